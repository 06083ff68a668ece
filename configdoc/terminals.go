package configdoc

import (
	"fmt"

	"github.com/beevik/etree"
)

// AuthState is the tri-state value of one terminal authorization.
type AuthState int

// Authorization states. Unset is distinct from Denied: an unset
// authorization falls back to the connector's built-in default.
const (
	AuthUnset AuthState = iota
	AuthDenied
	AuthGranted
)

// Next returns the following state in the UI interaction cycle
// Unset -> Denied -> Granted -> Unset.
func (s AuthState) Next() AuthState {
	switch s {
	case AuthUnset:
		return AuthDenied
	case AuthDenied:
		return AuthGranted
	default:
		return AuthUnset
	}
}

// Wire returns the stored integer form of the state.
func (s AuthState) Wire() string {
	switch s {
	case AuthGranted:
		return "1"
	case AuthDenied:
		return "-1"
	default:
		return "0"
	}
}

// ParseAuthState maps a stored value back to its state. Anything
// unrecognized reads as Unset.
func ParseAuthState(raw string) AuthState {
	switch raw {
	case "1":
		return AuthGranted
	case "-1":
		return AuthDenied
	default:
		return AuthUnset
	}
}

// MarshalJSON renders the state under its wire encoding so API consumers
// keep the -1/0/1 convention.
func (s AuthState) MarshalJSON() ([]byte, error) {
	return []byte(s.Wire()), nil
}

// UnmarshalJSON accepts the -1/0/1 wire encoding.
func (s *AuthState) UnmarshalJSON(data []byte) error {
	*s = ParseAuthState(string(data))
	return nil
}

// Authorization is one feature permission of a terminal, identified by a
// stable business id rather than position.
type Authorization struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	State AuthState `json:"state"`
}

// SalesRep is one sales representative visible on a terminal.
type SalesRep struct {
	InternalID string `json:"IDInterne"`
	Label      string `json:"Libelle"`
}

// TerminalView is the editable projection of one device terminal.
type TerminalView struct {
	Name           string          `json:"name"`
	TabletID       string          `json:"tabletId"`
	PhoneID        string          `json:"phoneId"`
	TechnicianID   string          `json:"technicianId"`
	DepotID        string          `json:"depotId"`
	SalesReps      []SalesRep      `json:"salesReps"`
	Authorizations []Authorization `json:"authorizations"`
}

var terminalListPath = MustPath("Terminaux/Terminal")

// ErrTerminalIndexOutOfRange rejects terminal updates targeting an index
// beyond the current document.
var ErrTerminalIndexOutOfRange = fmt.Errorf("terminal index out of range")

// TerminalCount returns the number of terminals in the document.
func TerminalCount(doc *Document) int {
	return len(terminalListPath.ResolveAll(doc.Root()))
}

// ReadTerminals projects every terminal in document order.
func ReadTerminals(doc *Document) []TerminalView {
	terminals := []TerminalView{}
	for _, el := range terminalListPath.ResolveAll(doc.Root()) {
		terminals = append(terminals, readTerminal(el))
	}
	return terminals
}

func readTerminal(el *etree.Element) TerminalView {
	view := TerminalView{
		Name:           childText(el, "Nom", ""),
		TabletID:       childText(el, "ID_Tablette", ""),
		PhoneID:        childText(el, "ID_Smartphone", ""),
		SalesReps:      []SalesRep{},
		Authorizations: []Authorization{},
	}
	if filters := el.SelectElement("Filtres"); filters != nil {
		view.TechnicianID = MustPath("Techniciens/Technicien/IDInterne").Text(filters, "")
		view.DepotID = MustPath("Depots/Depot/IDInterne").Text(filters, "")
		for _, rep := range MustPath("Commerciaux/Commercial").ResolveAll(filters) {
			view.SalesReps = append(view.SalesReps, SalesRep{
				InternalID: childText(rep, "IDInterne", ""),
				Label:      childText(rep, "Libelle", ""),
			})
		}
	}
	if auths := el.SelectElement("Autorisations"); auths != nil {
		for _, auth := range auths.SelectElements("Autorisation") {
			view.Authorizations = append(view.Authorizations, Authorization{
				ID:    childText(auth, "ID", ""),
				Label: childText(auth, "Libelle", ""),
				State: ParseAuthState(childText(auth, "Autorise", "0")),
			})
		}
	}
	return view
}

// UpdateTerminal applies the edited view onto the terminal at the given
// zero-based index. The index is validated against the live document before
// any mutation. Authorizations are merged by id: matched elements are
// updated in place (position preserved), unmatched ids are appended as new
// elements. The sales rep filter collection is fully replaced.
func UpdateTerminal(doc *Document, index int, view TerminalView) error {
	terminals := terminalListPath.ResolveAll(doc.Root())
	if index < 0 || index >= len(terminals) {
		return fmt.Errorf("%w: %d of %d", ErrTerminalIndexOutOfRange, index, len(terminals))
	}
	terminal := terminals[index]

	setChildText(terminal, "Nom", view.Name)
	setChildText(terminal, "ID_Tablette", view.TabletID)
	setChildText(terminal, "ID_Smartphone", view.PhoneID)

	filters := MustPath("Filtres").Ensure(terminal)
	technician := MustPath("Techniciens/Technicien").Ensure(filters)
	setChildText(technician, "IDInterne", view.TechnicianID)
	depot := MustPath("Depots/Depot").Ensure(filters)
	setChildText(depot, "IDInterne", view.DepotID)

	reps := make([]*etree.Element, 0, len(view.SalesReps))
	for _, rep := range view.SalesReps {
		el := etree.NewElement("Commercial")
		el.AddChild(newTextElement("IDInterne", rep.InternalID))
		el.AddChild(newTextElement("Libelle", rep.Label))
		reps = append(reps, el)
	}
	replaceChildren(MustPath("Commerciaux").Ensure(filters), reps)

	auths := MustPath("Autorisations").Ensure(terminal)
	existing := auths.SelectElements("Autorisation")
	byID := make(map[string]*etree.Element, len(existing))
	for _, el := range existing {
		byID[childText(el, "ID", "")] = el
	}
	for _, auth := range view.Authorizations {
		if el, ok := byID[auth.ID]; ok {
			setChildText(el, "Autorise", auth.State.Wire())
			continue
		}
		el := auths.CreateElement("Autorisation")
		el.AddChild(newTextElement("ID", auth.ID))
		el.AddChild(newTextElement("Autorise", auth.State.Wire()))
		el.AddChild(newTextElement("Libelle", auth.Label))
	}
	return nil
}
