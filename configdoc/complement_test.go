package configdoc

import "testing"

func TestReadComplementDefaults(t *testing.T) {
	view := ReadComplement(New())
	if view.DriveType != DriveNone {
		t.Errorf("missing drive should read as %q, got %q", DriveNone, view.DriveType)
	}
	if view.GoogleAPIKey != "" || view.Script != "" {
		t.Errorf("scalars should default empty: %+v", view)
	}
	if view.MailReport != (MailReport{}) {
		t.Errorf("mail report should default off: %+v", view.MailReport)
	}
}

func TestReadComplementCrossedNotificationTags(t *testing.T) {
	doc, err := Parse(`<Connexion><Complement><Mail_Rapport>
		<NotifInf>1</NotifInf>
		<NotifImp>0</NotifImp>
	</Mail_Rapport></Complement></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	view := ReadComplement(doc)
	if !view.MailReport.NotifyImport {
		t.Error("NotifInf=1 should set the import notification")
	}
	if view.MailReport.NotifyInfo {
		t.Error("NotifImp=0 should leave the info notification off")
	}
}

func TestComplementWriteReadRoundTrip(t *testing.T) {
	doc := New()
	in := ComplementView{
		GoogleAPIKey: "AIza-key",
		DriveType:    "GoogleDrive",
		MailReport: MailReport{
			Send:         true,
			Recipient:    "ops@example.fr",
			NotifyError:  true,
			NotifyImport: true,
		},
		Script: `C:\scripts\post.ps1`,
	}
	WriteComplement(doc, in)

	raw, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	reloaded, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := ReadComplement(reloaded); got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestWriteComplementStoresDriveNoneAsEmpty(t *testing.T) {
	doc := New()
	WriteComplement(doc, ComplementView{DriveType: DriveNone})

	if got := MustPath("Complement/Drive/Type_Drive").Text(doc.Root(), "def"); got != "def" {
		t.Errorf("drive none should persist as empty text, got %q", got)
	}
	if got := ReadComplement(doc).DriveType; got != DriveNone {
		t.Errorf("read back = %q", got)
	}
}

func TestWriteComplementKeepsUnknownChildren(t *testing.T) {
	doc, err := Parse(`<Connexion><Complement>
		<LegacyFlag>1</LegacyFlag>
	</Complement></Connexion>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	WriteComplement(doc, ComplementView{DriveType: DriveNone})

	if got := doc.FindAnyText("LegacyFlag"); got != "1" {
		t.Errorf("legacy child lost: %q", got)
	}
}
