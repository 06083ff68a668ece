package configdoc

import "testing"

func TestReadCalendarsDefaults(t *testing.T) {
	doc, err := Parse(`<Connexion><Liaisons_Externes><Agenda>
		<Correspondances>
			<Correspondance></Correspondance>
			<Correspondance><ID_Salarie>42</ID_Salarie><ID_Agenda>cal-1</ID_Agenda></Correspondance>
		</Correspondances>
	</Agenda></Liaisons_Externes></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	view := ReadCalendars(doc)
	if view.AgendaType != AgendaNone {
		t.Errorf("missing type should read as none, got %q", view.AgendaType)
	}
	if len(view.Mappings) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(view.Mappings))
	}
	if view.Mappings[0] != (CalendarMapping{EmployeeID: "empty", CalendarID: "-1"}) {
		t.Errorf("empty mapping sentinels = %+v", view.Mappings[0])
	}
	if view.Mappings[1] != (CalendarMapping{EmployeeID: "42", CalendarID: "cal-1"}) {
		t.Errorf("mapping 1 = %+v", view.Mappings[1])
	}
}

func TestWriteCalendarsReplacesMappings(t *testing.T) {
	doc := New()
	WriteCalendars(doc, CalendarsView{
		AgendaType: AgendaGoogle,
		Mappings: []CalendarMapping{
			{EmployeeID: "1", CalendarID: "a"},
			{EmployeeID: "2", CalendarID: "b"},
		},
	})
	WriteCalendars(doc, CalendarsView{
		AgendaType: AgendaGoogle,
		Mappings:   []CalendarMapping{{EmployeeID: "3", CalendarID: "c"}},
	})

	view := ReadCalendars(doc)
	if len(view.Mappings) != 1 {
		t.Fatalf("expected full replacement, got %d mappings", len(view.Mappings))
	}
	if view.Mappings[0] != (CalendarMapping{EmployeeID: "3", CalendarID: "c"}) {
		t.Errorf("mapping = %+v", view.Mappings[0])
	}
}

func TestWriteCalendarsKeepsLinks(t *testing.T) {
	doc := New()
	WriteExternalLinks(doc, ExternalLinksView{
		ImportFolder: "imp",
		Links:        []ExternalLink{{Software: "Sage"}},
	})

	WriteCalendars(doc, CalendarsView{AgendaType: AgendaMicrosoft})

	links := ReadExternalLinks(doc)
	if links.ImportFolder != "imp" || links.Links[0].Software != "Sage" {
		t.Errorf("links section changed: %+v", links)
	}
}

func TestReadEmployees(t *testing.T) {
	doc, err := Parse(`<Connexion><Data><CMB_SALARIES>
		<SALARIES><Nom>Martin</Nom><Prenom>Luc</Prenom><IDInterne>7</IDInterne></SALARIES>
		<SALARIES><Nom>Durand</Nom><Prenom>Eva</Prenom><IDInterne>8</IDInterne></SALARIES>
	</CMB_SALARIES></Data></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	employees := ReadEmployees(doc)
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0] != (Employee{LastName: "Martin", FirstName: "Luc", InternalID: "7"}) {
		t.Errorf("employee 0 = %+v", employees[0])
	}
}
