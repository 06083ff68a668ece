package configdoc

import "github.com/beevik/etree"

// Agenda types accepted by the calendars section. Empty means no external
// calendar is linked.
const (
	AgendaNone      = ""
	AgendaGoogle    = "Google"
	AgendaMicrosoft = "Microsoft"
)

// CalendarMapping links one employee to one external calendar.
type CalendarMapping struct {
	EmployeeID string `json:"ID_Salarie"`
	CalendarID string `json:"ID_Agenda"`
}

// CalendarsView is the external calendar section: the provider type plus the
// employee/calendar correspondence table.
type CalendarsView struct {
	AgendaType string            `json:"Type_Agenda"`
	Mappings   []CalendarMapping `json:"Correspondances"`
}

// Employee is one entry of the employee catalog the correspondence table
// references. The catalog is replicated into the document by the connector
// and read-only here.
type Employee struct {
	LastName   string `json:"Nom"`
	FirstName  string `json:"Prenom"`
	InternalID string `json:"IDInterne"`
}

var (
	agendaPath          = MustPath("Liaisons_Externes/Agenda")
	agendaTypePath      = MustPath("Liaisons_Externes/Agenda/Type_Agenda")
	agendaMappingsPath  = MustPath("Liaisons_Externes/Agenda/Correspondances")
	agendaMappingPath   = MustPath("Liaisons_Externes/Agenda/Correspondances/Correspondance")
	employeeCatalogPath = MustPath("Data/CMB_SALARIES/SALARIES")
)

// ReadCalendars projects the external calendar section. Missing mapping
// fields keep the sentinels the UI expects: "empty" for an unassigned
// employee and "-1" for an unassigned calendar.
func ReadCalendars(doc *Document) CalendarsView {
	root := doc.Root()
	view := CalendarsView{
		AgendaType: agendaTypePath.Text(root, AgendaNone),
		Mappings:   []CalendarMapping{},
	}
	for _, el := range agendaMappingPath.ResolveAll(root) {
		view.Mappings = append(view.Mappings, CalendarMapping{
			EmployeeID: childText(el, "ID_Salarie", "empty"),
			CalendarID: childText(el, "ID_Agenda", "-1"),
		})
	}
	return view
}

// ReadEmployees returns the employee catalog in document order.
func ReadEmployees(doc *Document) []Employee {
	root := doc.Root()
	employees := []Employee{}
	for _, el := range employeeCatalogPath.ResolveAll(root) {
		employees = append(employees, Employee{
			LastName:   childText(el, "Nom", ""),
			FirstName:  childText(el, "Prenom", ""),
			InternalID: childText(el, "IDInterne", ""),
		})
	}
	return employees
}

// WriteCalendars sets the agenda type and fully replaces the correspondence
// collection. Folder scalars and the Liaisons collection under the shared
// Liaisons_Externes subtree are not touched.
func WriteCalendars(doc *Document, view CalendarsView) {
	root := doc.Root()
	agenda := agendaPath.Ensure(root)
	setChildText(agenda, "Type_Agenda", view.AgendaType)

	children := make([]*etree.Element, 0, len(view.Mappings))
	for _, m := range view.Mappings {
		el := etree.NewElement("Correspondance")
		el.AddChild(newTextElement("ID_Salarie", m.EmployeeID))
		el.AddChild(newTextElement("ID_Agenda", m.CalendarID))
		children = append(children, el)
	}
	replaceChildren(agendaMappingsPath.Ensure(root), children)
}
