package configdoc

import "testing"

func TestSourcesWriteReadRoundTrip(t *testing.T) {
	doc := New()
	in := []Source{
		{Provider: "EBP", Server: "srv1", DatabaseName: "gescom", ReadOnly: true, Username: "sa", Password: "p'wd"},
		{Provider: "Sage", Server: "srv2", DatabaseName: "compta", Username: "admin"},
	}
	WriteSources(doc, in)

	raw, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	reloaded, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := ReadSources(reloaded)
	if len(out) != SourceSlots {
		t.Fatalf("expected %d slots, got %d", SourceSlots, len(out))
	}
	for i, want := range in {
		if out[i] != want {
			t.Errorf("source %d = %+v, want %+v", i, out[i], want)
		}
	}
	for i := len(in); i < SourceSlots; i++ {
		if out[i] != (Source{}) {
			t.Errorf("padding slot %d not empty: %+v", i, out[i])
		}
	}
}

func TestReadSourcesDefaults(t *testing.T) {
	doc, err := Parse(`<Connexion><Sources><Source>
		<Provider>EBP</Provider>
		<Serveur>host</Serveur>
	</Source></Sources></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sources := ReadSources(doc)
	if sources[0].ReadOnly {
		t.Error("missing Lecture_Seule should read as false")
	}
	if sources[0].DatabaseName != "" {
		t.Errorf("missing Nom_BDD should read empty, got %q", sources[0].DatabaseName)
	}
}

func TestReadSourcesPaddingIsReadOnly(t *testing.T) {
	doc := New()
	before, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	sources := ReadSources(doc)
	if len(sources) != SourceSlots {
		t.Fatalf("expected %d padded slots, got %d", SourceSlots, len(sources))
	}

	after, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if before != after {
		t.Error("reading sources must not mutate the document")
	}
}

func TestWriteSourcesLeavesOtherSectionsAlone(t *testing.T) {
	doc, err := Parse(`<Connexion>
		<Complement><ScriptComplementaire>do_thing.ps1</ScriptComplementaire></Complement>
		<Legacy>keep me</Legacy>
		<Sources><Source><Provider>Old</Provider></Source></Sources>
	</Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	WriteSources(doc, []Source{{Provider: "New"}})

	raw, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	reloaded, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := ReadComplement(reloaded).Script; got != "do_thing.ps1" {
		t.Errorf("complement script changed: %q", got)
	}
	if got := reloaded.FindAnyText("Legacy"); got != "keep me" {
		t.Errorf("unknown element lost: %q", got)
	}
	if got := ReadSources(reloaded)[0].Provider; got != "New" {
		t.Errorf("source not replaced: %q", got)
	}
}
