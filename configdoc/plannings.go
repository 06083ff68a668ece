package configdoc

// Planning day and kind conventions. Days are "1".."7" plus "8" meaning
// every day. Kinds are C (full), R (incremental), I (import).
const (
	PlanningEveryDay = "8"

	PlanningFull        = "C"
	PlanningIncremental = "R"
	PlanningImport      = "I"
)

// PlanningEntry is one scheduled synchronization slot. Times use HH:MM with
// 15-minute granularity.
type PlanningEntry struct {
	Day  string `json:"Jour"`
	Time string `json:"Heure"`
	Kind string `json:"Ordre"`
}

var legacyPlanningPath = MustPath("Planifications/Planning")

// IsValidPlanningKind reports whether kind is one of the three sync kinds.
func IsValidPlanningKind(kind string) bool {
	return kind == PlanningFull || kind == PlanningIncremental || kind == PlanningImport
}

// ReadLegacyPlannings reads planning slots out of the document. Schedules
// are stored authoritatively in the relational planning table; this legacy
// subtree only serves as fallback display data for documents predating the
// table.
func ReadLegacyPlannings(doc *Document) []PlanningEntry {
	entries := []PlanningEntry{}
	for _, el := range legacyPlanningPath.ResolveAll(doc.Root()) {
		entries = append(entries, PlanningEntry{
			Day:  childText(el, "Jour", PlanningEveryDay),
			Time: childText(el, "Heure", "00:00"),
			Kind: childText(el, "Ordre", PlanningFull),
		})
	}
	return entries
}
