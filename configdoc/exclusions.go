package configdoc

import "github.com/beevik/etree"

// Exclusion list types, one per catalog hierarchy.
const (
	ExclusionArticles  = "ART"
	ExclusionClients   = "CLI"
	ExclusionSuppliers = "FOU"
)

// ExclusionEntry is one flat exclusion value. An empty SubFamilyID excludes
// the whole family.
type ExclusionEntry struct {
	Type        string `json:"type"`
	FamilyID    string `json:"familyId"`
	SubFamilyID string `json:"subFamilyId,omitempty"`
}

// ExclusionItemView is a catalog item annotated with its exclusion state.
// Inherited marks items covered by a family-level exclusion rather than
// their own entry.
type ExclusionItemView struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Excluded  bool   `json:"excluded"`
	Inherited bool   `json:"inherited"`
}

// ExclusionFamilyView is a catalog family annotated with its exclusion state.
type ExclusionFamilyView struct {
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Excluded bool                `json:"excluded"`
	Items    []ExclusionItemView `json:"items"`
}

// ExclusionsView merges the three catalog hierarchies with the flat
// exclusion list.
type ExclusionsView struct {
	Articles  []ExclusionFamilyView `json:"articles"`
	Clients   []ExclusionFamilyView `json:"clients"`
	Suppliers []ExclusionFamilyView `json:"suppliers"`
}

var (
	exclusionsPath    = MustPath("Exclusions")
	exclusionListPath = MustPath("Exclusions/Exclusion")
)

var catalogPaths = map[string]Path{
	ExclusionArticles:  MustPath("Data/CMB_FAMILLEARTICLE/FAMILLEARTICLE"),
	ExclusionClients:   MustPath("Data/CMB_FAMILLECLIENT/FAMILLECLIENT"),
	ExclusionSuppliers: MustPath("Data/CMB_FAMILLEFOURNISSEUR/FAMILLEFOURNISSEUR"),
}

// ReadExclusionEntries returns the flat exclusion list in document order.
func ReadExclusionEntries(doc *Document) []ExclusionEntry {
	root := doc.Root()
	entries := []ExclusionEntry{}
	for _, excl := range exclusionListPath.ResolveAll(root) {
		exclType := childText(excl, "Type", "")
		values := excl.SelectElement("Valeurs")
		if values == nil {
			continue
		}
		for _, value := range values.SelectElements("Valeur") {
			key := childText(value, "IDInterne", "")
			if key == "" {
				continue
			}
			family, sub := UnpackFamilyKey(key)
			entries = append(entries, ExclusionEntry{Type: exclType, FamilyID: family, SubFamilyID: sub})
		}
	}
	return entries
}

// ReadExclusions builds the annotated exclusion view: the catalog hierarchy
// per type, with each family and item flagged against the flat list. A
// family is wholly excluded iff an entry for its id exists with no
// sub-family; its items are then shown excluded by inheritance.
func ReadExclusions(doc *Document) ExclusionsView {
	entries := ReadExclusionEntries(doc)
	return ExclusionsView{
		Articles:  annotateFamilies(readCatalogFamilies(doc, ExclusionArticles), entries, ExclusionArticles),
		Clients:   annotateFamilies(readCatalogFamilies(doc, ExclusionClients), entries, ExclusionClients),
		Suppliers: annotateFamilies(readCatalogFamilies(doc, ExclusionSuppliers), entries, ExclusionSuppliers),
	}
}

// readCatalogFamilies walks one catalog subtree. Catalog rows repeat the
// family fields once per item, and the same family may recur under
// context-qualified ids, so families are deduplicated on the raw family id.
func readCatalogFamilies(doc *Document, exclType string) []ExclusionFamilyView {
	root := doc.Root()
	families := []ExclusionFamilyView{}
	index := map[string]int{}
	for _, row := range catalogPaths[exclType].ResolveAll(root) {
		rawFamilyID := childText(row, "IDFamille", "")
		if rawFamilyID == "" {
			continue
		}
		familyID, _ := UnpackFamilyKey(rawFamilyID)
		pos, seen := index[familyID]
		if !seen {
			families = append(families, ExclusionFamilyView{
				ID:    familyID,
				Label: childText(row, "LibelleFamille", ""),
				Items: []ExclusionItemView{},
			})
			pos = len(families) - 1
			index[familyID] = pos
		}
		itemID := childText(row, "IDInterne", "")
		if itemID == "" {
			continue
		}
		families[pos].Items = append(families[pos].Items, ExclusionItemView{
			ID:    itemID,
			Label: childText(row, "Libelle", ""),
		})
	}
	return families
}

func annotateFamilies(families []ExclusionFamilyView, entries []ExclusionEntry, exclType string) []ExclusionFamilyView {
	wholeFamily := map[string]bool{}
	items := map[string]bool{}
	for _, e := range entries {
		if e.Type != exclType {
			continue
		}
		if e.SubFamilyID == "" {
			wholeFamily[e.FamilyID] = true
		} else {
			items[PackFamilyKey(e.FamilyID, e.SubFamilyID)] = true
		}
	}
	for fi := range families {
		family := &families[fi]
		family.Excluded = wholeFamily[family.ID]
		for ii := range family.Items {
			item := &family.Items[ii]
			switch {
			case family.Excluded:
				item.Excluded = true
				item.Inherited = true
			case items[PackFamilyKey(family.ID, item.ID)]:
				item.Excluded = true
			}
		}
	}
	return families
}

// WriteExclusions replaces the whole exclusion subtree with the given
// entries, grouped into one Exclusion element per type. A family-level
// entry makes any item-level entry of the same family redundant; redundant
// item entries are dropped so a family and its children never coexist in
// the persisted list.
func WriteExclusions(doc *Document, entries []ExclusionEntry) {
	wholeFamily := map[string]bool{}
	for _, e := range entries {
		if e.SubFamilyID == "" {
			wholeFamily[e.Type+"\x00"+e.FamilyID] = true
		}
	}

	keysByType := map[string][]string{}
	typeOrder := []string{}
	seenKeys := map[string]bool{}
	for _, e := range entries {
		if e.SubFamilyID != "" && wholeFamily[e.Type+"\x00"+e.FamilyID] {
			continue
		}
		key := PackFamilyKey(e.FamilyID, e.SubFamilyID)
		dedupe := e.Type + "\x00" + key
		if seenKeys[dedupe] {
			continue
		}
		seenKeys[dedupe] = true
		if _, ok := keysByType[e.Type]; !ok {
			typeOrder = append(typeOrder, e.Type)
		}
		keysByType[e.Type] = append(keysByType[e.Type], key)
	}

	children := make([]*etree.Element, 0, len(typeOrder))
	for _, exclType := range typeOrder {
		excl := etree.NewElement("Exclusion")
		excl.AddChild(newTextElement("Type", exclType))
		values := excl.CreateElement("Valeurs")
		for _, key := range keysByType[exclType] {
			value := values.CreateElement("Valeur")
			id := value.CreateElement("IDInterne")
			id.SetText(EncodeValue(key))
		}
		children = append(children, excl)
	}
	replaceChildren(exclusionsPath.Ensure(doc.Root()), children)
}
