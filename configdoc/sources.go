package configdoc

import "github.com/beevik/etree"

// SourceSlots is the number of editable source blocks the UI always shows.
// Padding to this count happens on read only; writes persist exactly the
// caller-provided list.
const SourceSlots = 4

// Source is one database source the connector synchronizes from.
type Source struct {
	Provider     string `json:"provider"`
	Server       string `json:"server"`
	DatabaseName string `json:"databaseName"`
	ReadOnly     bool   `json:"readOnly"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

var (
	sourcesPath    = MustPath("Sources")
	sourceListPath = MustPath("Sources/Source")
)

// ReadSources projects the source list out of the document, padded with
// empty slots up to SourceSlots.
func ReadSources(doc *Document) []Source {
	root := doc.Root()
	sources := []Source{}
	for _, el := range sourceListPath.ResolveAll(root) {
		sources = append(sources, Source{
			Provider:     childText(el, "Provider", ""),
			Server:       childText(el, "Serveur", ""),
			DatabaseName: childText(el, "Nom_BDD", ""),
			ReadOnly:     childText(el, "Lecture_Seule", "0") == "1",
			Username:     childText(el, "Utilisateur", ""),
			Password:     childText(el, "MDP", ""),
		})
	}
	for len(sources) < SourceSlots {
		sources = append(sources, Source{})
	}
	return sources
}

// WriteSources replaces the whole source collection with the given list.
// Every source also carries the public endpoint placeholders the connector
// fills in at runtime.
func WriteSources(doc *Document, sources []Source) {
	children := make([]*etree.Element, 0, len(sources))
	for _, src := range sources {
		el := etree.NewElement("Source")
		el.AddChild(newTextElement("Provider", src.Provider))
		el.AddChild(newTextElement("Serveur", src.Server))
		el.AddChild(newTextElement("Nom_BDD", src.DatabaseName))
		el.AddChild(newTextElement("Lecture_Seule", boolFlag(src.ReadOnly)))
		el.AddChild(newTextElement("Utilisateur", src.Username))
		el.AddChild(newTextElement("MDP", src.Password))
		el.AddChild(etree.NewElement("IP_Public"))
		el.AddChild(etree.NewElement("Port_Public"))
		children = append(children, el)
	}
	replaceChildren(sourcesPath.Ensure(doc.Root()), children)
}

func childText(el *etree.Element, tag, def string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return def
	}
	decoded := DecodeValue(child.Text())
	if decoded == "" {
		return def
	}
	return decoded
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
