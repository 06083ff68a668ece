package configdoc

import "testing"

func TestIsValidPlanningKind(t *testing.T) {
	for _, kind := range []string{PlanningFull, PlanningIncremental, PlanningImport} {
		if !IsValidPlanningKind(kind) {
			t.Errorf("%q should be valid", kind)
		}
	}
	for _, kind := range []string{"", "X", "c"} {
		if IsValidPlanningKind(kind) {
			t.Errorf("%q should be invalid", kind)
		}
	}
}

func TestReadLegacyPlannings(t *testing.T) {
	doc, err := Parse(`<Connexion><Planifications>
		<Planning><Jour>3</Jour><Heure>06:30</Heure><Ordre>R</Ordre></Planning>
		<Planning></Planning>
	</Planifications></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	entries := ReadLegacyPlannings(doc)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0] != (PlanningEntry{Day: "3", Time: "06:30", Kind: PlanningIncremental}) {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1] != (PlanningEntry{Day: PlanningEveryDay, Time: "00:00", Kind: PlanningFull}) {
		t.Errorf("empty slot should carry defaults, got %+v", entries[1])
	}
}

func TestReadLegacyPlanningsEmptyDocument(t *testing.T) {
	if entries := ReadLegacyPlannings(New()); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
