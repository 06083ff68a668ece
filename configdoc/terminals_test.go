package configdoc

import (
	"errors"
	"testing"
)

func TestAuthStateCycle(t *testing.T) {
	if AuthUnset.Next() != AuthDenied {
		t.Error("unset should cycle to denied")
	}
	if AuthDenied.Next() != AuthGranted {
		t.Error("denied should cycle to granted")
	}
	if AuthGranted.Next() != AuthUnset {
		t.Error("granted should cycle to unset")
	}
}

func TestAuthStateWire(t *testing.T) {
	cases := []struct {
		state AuthState
		wire  string
	}{
		{AuthGranted, "1"},
		{AuthDenied, "-1"},
		{AuthUnset, "0"},
	}
	for _, tc := range cases {
		if got := tc.state.Wire(); got != tc.wire {
			t.Errorf("Wire(%d) = %q, want %q", tc.state, got, tc.wire)
		}
		if got := ParseAuthState(tc.wire); got != tc.state {
			t.Errorf("ParseAuthState(%q) = %d, want %d", tc.wire, got, tc.state)
		}
	}
	if ParseAuthState("garbage") != AuthUnset {
		t.Error("unknown wire value should read as unset")
	}
}

const terminalTestDoc = `<Connexion><Terminaux>
	<Terminal>
		<Nom>Tablette atelier</Nom>
		<ID_Tablette>TAB-1</ID_Tablette>
		<Autorisations>
			<Autorisation><ID>A1</ID><Autorise>0</Autorise><Libelle>Devis</Libelle></Autorisation>
			<Autorisation><ID>B7</ID><Autorise>1</Autorise><Libelle>Factures</Libelle></Autorisation>
		</Autorisations>
	</Terminal>
	<Terminal><Nom>Mobile SAV</Nom></Terminal>
</Terminaux></Connexion>`

func TestReadTerminals(t *testing.T) {
	doc, err := Parse(terminalTestDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	terminals := ReadTerminals(doc)
	if len(terminals) != 2 {
		t.Fatalf("expected 2 terminals, got %d", len(terminals))
	}
	if terminals[0].Name != "Tablette atelier" || terminals[0].TabletID != "TAB-1" {
		t.Errorf("terminal 0 = %+v", terminals[0])
	}
	if len(terminals[0].Authorizations) != 2 {
		t.Fatalf("expected 2 authorizations, got %d", len(terminals[0].Authorizations))
	}
	if terminals[0].Authorizations[0].State != AuthUnset {
		t.Errorf("A1 state = %d", terminals[0].Authorizations[0].State)
	}
	if terminals[0].Authorizations[1].State != AuthGranted {
		t.Errorf("B7 state = %d", terminals[0].Authorizations[1].State)
	}
}

func TestUpdateTerminalMergesAuthorizations(t *testing.T) {
	doc, err := Parse(terminalTestDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	err = UpdateTerminal(doc, 0, TerminalView{
		Name:     "Tablette atelier",
		TabletID: "TAB-1",
		Authorizations: []Authorization{
			{ID: "A1", Label: "Devis", State: AuthGranted},
			{ID: "A2", Label: "Commandes", State: AuthDenied},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	auths := ReadTerminals(doc)[0].Authorizations
	if len(auths) != 3 {
		t.Fatalf("expected 3 authorizations, got %d", len(auths))
	}
	// A1 updated in place, B7 untouched, A2 appended last.
	if auths[0].ID != "A1" || auths[0].State != AuthGranted {
		t.Errorf("auth 0 = %+v", auths[0])
	}
	if auths[1].ID != "B7" || auths[1].State != AuthGranted {
		t.Errorf("auth 1 = %+v", auths[1])
	}
	if auths[2].ID != "A2" || auths[2].State != AuthDenied || auths[2].Label != "Commandes" {
		t.Errorf("auth 2 = %+v", auths[2])
	}
}

func TestUpdateTerminalReplacesSalesReps(t *testing.T) {
	doc, err := Parse(terminalTestDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	view := TerminalView{
		Name:         "Mobile SAV",
		TechnicianID: "T4",
		DepotID:      "D2",
		SalesReps:    []SalesRep{{InternalID: "9", Label: "Dupont"}},
	}
	if err := UpdateTerminal(doc, 1, view); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := UpdateTerminal(doc, 1, TerminalView{
		Name:      "Mobile SAV",
		SalesReps: []SalesRep{{InternalID: "5", Label: "Petit"}},
	}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	got := ReadTerminals(doc)[1]
	if len(got.SalesReps) != 1 || got.SalesReps[0].InternalID != "5" {
		t.Errorf("sales reps not replaced: %+v", got.SalesReps)
	}
}

func TestUpdateTerminalIndexOutOfRange(t *testing.T) {
	doc, err := Parse(terminalTestDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	for _, index := range []int{-1, 2, 10} {
		err := UpdateTerminal(doc, index, TerminalView{Name: "x"})
		if !errors.Is(err, ErrTerminalIndexOutOfRange) {
			t.Errorf("index %d: expected range error, got %v", index, err)
		}
	}

	after, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if before != after {
		t.Error("rejected update must leave the document untouched")
	}
}
