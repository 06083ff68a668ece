package agent

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"connectoradminapi/config"
	"connectoradminapi/configdoc"
	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"
	"connectoradminapi/repository"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// SyncResult is the agent's answer to a sync trigger. RetSync 0 means the
// agent refused or could not be reached; RetInfo carries the decoded
// human-readable status message.
type SyncResult struct {
	RetSync int    `json:"retSync"`
	RetInfo string `json:"retInfo"`
}

// SyncService triggers a synchronization run on the customer-operated
// agent. The command is an XML fragment base64-embedded in the request URL
// path; the call is one blocking GET with no retry.
type SyncService interface {
	TriggerSync(ctx context.Context, license *models.License, syncType string) (*SyncResult, error)
}

type syncService struct {
	queueRepo  repository.QueueRepository
	httpClient *http.Client
}

// NewSyncService creates a new agent sync service instance.
func NewSyncService(queueRepo repository.QueueRepository) SyncService {
	return &syncService{
		queueRepo:  queueRepo,
		httpClient: &http.Client{Timeout: config.Cfg.AgentRequestTimeout},
	}
}

// TriggerSync validates the request, locates the agent's latest registered
// endpoint and relays the command. An unreachable agent is reported inside
// the result rather than as an error: the trigger attempt itself completed.
func (s *syncService) TriggerSync(ctx context.Context, license *models.License, syncType string) (*SyncResult, error) {
	if syncType != configdoc.PlanningFull &&
		syncType != configdoc.PlanningIncremental &&
		syncType != configdoc.PlanningImport {
		return nil, fmt.Errorf("invalid sync type: %q", syncType)
	}
	if license.Premium == 0 {
		return nil, fmt.Errorf("remote synchronization requires a premium licence")
	}

	endpoint, err := s.queueRepo.LatestEndpoint(nil, license.IDSynchro)
	if err != nil {
		return nil, fmt.Errorf("failed to look up agent endpoint: %w", err)
	}
	if endpoint == nil {
		return nil, fmt.Errorf("no agent endpoint registered for %s", license.IDSynchro)
	}

	// A stale heartbeat only downgrades the reply with a warning; the agent
	// may still answer on its last known address.
	stale := time.Since(endpoint.SeenAt) > config.Cfg.AgentStaleAfter
	if stale {
		logger.Warnf("Agent endpoint for %s is stale (last seen %v)", license.IDSynchro, endpoint.SeenAt)
	}

	command, err := s.buildCommand(license, syncType)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("http://%s:%d/%s", endpoint.IP, endpoint.Port,
		base64.StdEncoding.EncodeToString([]byte(command)))
	logger.Infof("Triggering %s sync for %s on %s:%d", syncType, license.IDSynchro, endpoint.IP, endpoint.Port)

	result := s.call(ctx, url)
	if stale {
		result.RetInfo = "[Automate inactif] " + result.RetInfo
	}
	return result, nil
}

// buildCommand assembles the agent command document. Connecteur_Exe and
// Connecteur_Indice identify the connector build and are read out of the
// configuration document.
func (s *syncService) buildCommand(license *models.License, syncType string) (string, error) {
	var exe, serial string
	if doc, err := configdoc.Parse(license.ConfigConnector); err == nil {
		exe = doc.FindAnyText("Exe")
		serial = doc.FindAnyText("Serial")
	}

	tree := etree.NewDocument()
	root := tree.CreateElement("Automate")
	root.CreateElement("IDInterne_Demande").SetText(uuid.NewString())
	root.CreateElement("Instruction").SetText("SYNCHRO")
	root.CreateElement("TimeStamp").SetText(time.Now().UTC().Format(time.RFC3339))

	payload := root.CreateElement("SYNCHRO")
	payload.CreateElement("TypeSync").SetText(syncType)
	payload.CreateElement("Connecteur_Exe").SetText(exe)
	payload.CreateElement("Connecteur_Indice").SetText(serial)
	payload.CreateElement("LCommande3")
	payload.CreateElement("IDSynchro").SetText(license.IDSynchro)
	payload.CreateElement("IDDeviceDemandeur").SetText("Connecteur")

	out, err := tree.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize agent command: %w", err)
	}
	return out, nil
}

// call performs the blocking GET and parses the reply. Transport failures
// map to RetSync 0 with a communication message.
func (s *syncService) call(ctx context.Context, url string) *SyncResult {
	failed := &SyncResult{
		RetSync: 0,
		RetInfo: "La communication avec l'automate a échoué. Vérifiez qu'il est démarré et joignable.",
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Errorf("Failed to build agent request: %v", err)
		return failed
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Errorf("Agent call failed: %v", err)
		return failed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Errorf("Failed to read agent reply: %v", err)
		return failed
	}
	return ParseReply(string(body))
}

// ParseReply extracts RetSync and RetInfo from the agent's reply fragment.
// Anything unparseable reads as a refusal with the raw body preserved in
// the decoded message.
func ParseReply(body string) *SyncResult {
	result := &SyncResult{RetSync: 0}

	tree := etree.NewDocument()
	if err := tree.ReadFromString(body); err != nil {
		result.RetInfo = configdoc.DecodeAgentMessage(body)
		return result
	}
	if el := tree.FindElement("//RetSync"); el != nil {
		if n, err := strconv.Atoi(el.Text()); err == nil {
			result.RetSync = n
		}
	}
	if el := tree.FindElement("//RetInfo"); el != nil {
		result.RetInfo = configdoc.DecodeAgentMessage(el.Text())
	}
	return result
}
