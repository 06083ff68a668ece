package configdoc

import "github.com/beevik/etree"

// LinkSlots is the number of external link blocks presented on read.
const LinkSlots = 4

// ExternalLink describes one third-party software link the connector
// exchanges files with.
type ExternalLink struct {
	Software string `json:"Logiciel"`
	Config   string `json:"Config"`
	Username string `json:"Utilisateur"`
	Password string `json:"MDP"`
}

// ExternalLinksView groups the import/export folders and the link list.
type ExternalLinksView struct {
	ImportFolder string         `json:"Dossier_Import"`
	ExportFolder string         `json:"Dossier_Export"`
	Links        []ExternalLink `json:"Liaisons"`
}

// The Liaisons_Externes subtree is shared with the calendars projector,
// which owns its Agenda child. This projector owns only the folder scalars
// and the Liaisons collection.
var (
	linksContainerPath = MustPath("Liaisons_Externes")
	linksImportPath    = MustPath("Liaisons_Externes/Dossier_Import")
	linksExportPath    = MustPath("Liaisons_Externes/Dossier_Export")
	linksCollPath      = MustPath("Liaisons_Externes/Liaisons")
	linksListPath      = MustPath("Liaisons_Externes/Liaisons/Liaison")
)

// ReadExternalLinks projects the external link section, padding the link
// list to LinkSlots.
func ReadExternalLinks(doc *Document) ExternalLinksView {
	root := doc.Root()
	view := ExternalLinksView{
		ImportFolder: linksImportPath.Text(root, ""),
		ExportFolder: linksExportPath.Text(root, ""),
		Links:        []ExternalLink{},
	}
	for _, el := range linksListPath.ResolveAll(root) {
		view.Links = append(view.Links, ExternalLink{
			Software: childText(el, "Logiciel", ""),
			Config:   childText(el, "Config", ""),
			Username: childText(el, "Utilisateur", ""),
			Password: childText(el, "MDP", ""),
		})
	}
	for len(view.Links) < LinkSlots {
		view.Links = append(view.Links, ExternalLink{})
	}
	return view
}

// WriteExternalLinks updates the folder scalars in place and fully replaces
// the Liaisons collection. The sibling Agenda subtree is left untouched.
func WriteExternalLinks(doc *Document, view ExternalLinksView) {
	root := doc.Root()
	container := linksContainerPath.Ensure(root)
	setChildText(container, "Dossier_Import", view.ImportFolder)
	setChildText(container, "Dossier_Export", view.ExportFolder)

	children := make([]*etree.Element, 0, len(view.Links))
	for _, link := range view.Links {
		el := etree.NewElement("Liaison")
		el.AddChild(newTextElement("Logiciel", link.Software))
		el.AddChild(newTextElement("Config", link.Config))
		el.AddChild(newTextElement("Utilisateur", link.Username))
		el.AddChild(newTextElement("MDP", link.Password))
		children = append(children, el)
	}
	replaceChildren(linksCollPath.Ensure(root), children)
}
