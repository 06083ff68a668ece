package configdoc

import (
	"strconv"

	"github.com/beevik/etree"
)

// SyncDataToggle enables or disables synchronization of one data element.
// HistoryDepth is only meaningful when the element's schema entry marks it
// history-capable; values up to 10 count documents, larger values count days.
type SyncDataToggle struct {
	Reference    string `json:"Reference"`
	Complete     bool   `json:"Complete"`
	Label        string `json:"Libelle"`
	HistoryDepth string `json:"Histo"`
}

// SyncElement is one schema entry of the synchronizable element catalog.
type SyncElement struct {
	Code           string `json:"Code"`
	CanHaveHistory bool   `json:"CanHaveHistory"`
}

var (
	syncDataPath     = MustPath("Donnees_A_Synchroniser")
	syncDataListPath = MustPath("Donnees_A_Synchroniser/Donnee")
	syncElementsPath = MustPath("Data/ElementsSync/Element")
)

// HistoryUnit names the unit a history depth value is expressed in.
func HistoryUnit(depth string) string {
	if n, err := strconv.Atoi(depth); err == nil && n > 10 {
		return "days"
	}
	return "documents"
}

// ReadSyncData projects the sync toggle list in document order.
func ReadSyncData(doc *Document) []SyncDataToggle {
	toggles := []SyncDataToggle{}
	for _, el := range syncDataListPath.ResolveAll(doc.Root()) {
		toggles = append(toggles, SyncDataToggle{
			Reference:    childText(el, "Reference", ""),
			Complete:     childText(el, "Complete", "0") == "1",
			Label:        childText(el, "Libelle", ""),
			HistoryDepth: childText(el, "Histo", "0"),
		})
	}
	return toggles
}

// ReadSyncElements returns the element schema catalog. An element whose
// Histo flag is "1" accepts a history depth on its toggle.
func ReadSyncElements(doc *Document) []SyncElement {
	elements := []SyncElement{}
	for _, el := range syncElementsPath.ResolveAll(doc.Root()) {
		elements = append(elements, SyncElement{
			Code:           childText(el, "Code", ""),
			CanHaveHistory: childText(el, "Histo", "0") == "1",
		})
	}
	return elements
}

// WriteSyncData replaces the whole toggle collection with the given list.
func WriteSyncData(doc *Document, toggles []SyncDataToggle) {
	children := make([]*etree.Element, 0, len(toggles))
	for _, t := range toggles {
		depth := t.HistoryDepth
		if depth == "" {
			depth = "0"
		}
		el := etree.NewElement("Donnee")
		el.AddChild(newTextElement("Reference", t.Reference))
		el.AddChild(newTextElement("Complete", boolFlag(t.Complete)))
		el.AddChild(newTextElement("Libelle", t.Label))
		el.AddChild(newTextElement("Histo", depth))
		children = append(children, el)
	}
	replaceChildren(syncDataPath.Ensure(doc.Root()), children)
}
