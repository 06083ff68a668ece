package configdoc

import "testing"

func TestExternalLinksWriteReadRoundTrip(t *testing.T) {
	doc := New()
	in := ExternalLinksView{
		ImportFolder: `C:\Import`,
		ExportFolder: `C:\Export`,
		Links: []ExternalLink{
			{Software: "Sage", Config: "cfg1", Username: "u1", Password: "p1"},
		},
	}
	WriteExternalLinks(doc, in)

	raw, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	reloaded, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := ReadExternalLinks(reloaded)
	if out.ImportFolder != in.ImportFolder || out.ExportFolder != in.ExportFolder {
		t.Errorf("folders = %q / %q", out.ImportFolder, out.ExportFolder)
	}
	if len(out.Links) != LinkSlots {
		t.Fatalf("expected %d link slots, got %d", LinkSlots, len(out.Links))
	}
	if out.Links[0] != in.Links[0] {
		t.Errorf("link 0 = %+v", out.Links[0])
	}
	if out.Links[1] != (ExternalLink{}) {
		t.Errorf("padding slot not empty: %+v", out.Links[1])
	}
}

func TestWriteExternalLinksKeepsAgenda(t *testing.T) {
	doc, err := Parse(`<Connexion><Liaisons_Externes>
		<Dossier_Import>old</Dossier_Import>
		<Agenda><Type_Agenda>Google</Type_Agenda></Agenda>
	</Liaisons_Externes></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	WriteExternalLinks(doc, ExternalLinksView{ImportFolder: "new"})

	if got := ReadCalendars(doc).AgendaType; got != AgendaGoogle {
		t.Errorf("agenda type changed: %q", got)
	}
	if got := ReadExternalLinks(doc).ImportFolder; got != "new" {
		t.Errorf("import folder = %q", got)
	}
}
