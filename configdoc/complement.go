package configdoc

// DriveNone is the sentinel returned for an unset drive type. Empty string
// is a meaningful "cleared" value for other fields, so the absence of a
// drive gets its own marker.
const DriveNone = "none"

// MailReport configures the post-synchronization report mail.
type MailReport struct {
	Send            bool   `json:"envoyerRapport"`
	Recipient       string `json:"mailDestinataire"`
	NotifyError     bool   `json:"notifErr"`
	NotifyImport    bool   `json:"notifInf"`
	NotifyInfo      bool   `json:"notifImp"`
	GlobalizeImport bool   `json:"globaliserEnregImport"`
}

// ComplementView is the miscellaneous settings section: geocoding API key,
// document drive, report mail, and the optional post-sync script.
type ComplementView struct {
	GoogleAPIKey string     `json:"googleApiKey"`
	DriveType    string     `json:"driveType"`
	MailReport   MailReport `json:"mailRapport"`
	Script       string     `json:"scriptComplementaire"`
}

var (
	complementPath = MustPath("Complement")
	driveTypePath  = MustPath("Complement/Drive/Type_Drive")
	mailReportPath = MustPath("Complement/Mail_Rapport")
	apiKeyPath     = MustPath("Complement/APIKey_Google")
	scriptPath     = MustPath("Complement/ScriptComplementaire")
)

// ReadComplement projects the complement section. An absent or empty drive
// type maps to the DriveNone sentinel.
func ReadComplement(doc *Document) ComplementView {
	root := doc.Root()
	view := ComplementView{
		GoogleAPIKey: apiKeyPath.Text(root, ""),
		DriveType:    driveTypePath.Text(root, DriveNone),
		Script:       scriptPath.Text(root, ""),
	}
	if view.DriveType == "" {
		view.DriveType = DriveNone
	}
	// The NotifInf/NotifImp tags are historically crossed relative to their
	// meaning; the wire layout is frozen by deployed connectors.
	mail := mailReportPath.Resolve(root)
	if mail != nil {
		view.MailReport = MailReport{
			Send:            childText(mail, "Envoyer_Rapport", "0") == "1",
			Recipient:       childText(mail, "MailDestinataire", ""),
			NotifyError:     childText(mail, "NotifErr", "0") == "1",
			NotifyImport:    childText(mail, "NotifInf", "0") == "1",
			NotifyInfo:      childText(mail, "NotifImp", "0") == "1",
			GlobalizeImport: childText(mail, "Globaliser_Enreg_Import", "0") == "1",
		}
	}
	return view
}

// WriteComplement updates every complement scalar in place. The DriveNone
// sentinel is stored as an empty value. Unknown legacy children of the
// Complement subtree survive the write.
func WriteComplement(doc *Document, view ComplementView) {
	root := doc.Root()
	complement := complementPath.Ensure(root)
	setChildText(complement, "APIKey_Google", view.GoogleAPIKey)

	driveType := view.DriveType
	if driveType == DriveNone {
		driveType = ""
	}
	drive := MustPath("Drive").Ensure(complement)
	setChildText(drive, "Type_Drive", driveType)

	mail := MustPath("Mail_Rapport").Ensure(complement)
	setChildText(mail, "Envoyer_Rapport", boolFlag(view.MailReport.Send))
	setChildText(mail, "MailDestinataire", view.MailReport.Recipient)
	setChildText(mail, "NotifErr", boolFlag(view.MailReport.NotifyError))
	setChildText(mail, "NotifInf", boolFlag(view.MailReport.NotifyImport))
	setChildText(mail, "NotifImp", boolFlag(view.MailReport.NotifyInfo))
	setChildText(mail, "Globaliser_Enreg_Import", boolFlag(view.MailReport.GlobalizeImport))

	setChildText(complement, "ScriptComplementaire", view.Script)
}
