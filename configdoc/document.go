package configdoc

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// RootTag is the tag of the element holding all connector configuration.
const RootTag = "Connexion"

// Document wraps one customer's connector configuration XML tree. A document
// is loaded fresh from the stored column for every operation, mutated in
// memory by exactly one section projector, then serialized back whole.
type Document struct {
	tree *etree.Document
}

// New creates an empty document containing only the configuration root.
func New() *Document {
	tree := etree.NewDocument()
	tree.CreateElement(RootTag)
	return &Document{tree: tree}
}

// Parse loads a stored configuration string. An empty or whitespace-only
// value yields a fresh empty document; anything else must parse as XML.
func Parse(raw string) (*Document, error) {
	if strings.TrimSpace(raw) == "" {
		return New(), nil
	}
	tree := etree.NewDocument()
	if err := tree.ReadFromString(raw); err != nil {
		return nil, fmt.Errorf("failed to parse configuration document: %w", err)
	}
	if tree.Root() == nil {
		return New(), nil
	}
	return &Document{tree: tree}, nil
}

// Root returns the configuration root element, creating it when the parsed
// document used an unexpected or missing root.
func (d *Document) Root() *etree.Element {
	if root := d.tree.Root(); root != nil {
		return root
	}
	return d.tree.CreateElement(RootTag)
}

// Serialize renders the whole tree back to its storage form. Untouched
// subtrees keep their element and text content; whitespace between elements
// is not guaranteed byte-for-byte.
func (d *Document) Serialize() (string, error) {
	out, err := d.tree.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize configuration document: %w", err)
	}
	return out, nil
}

// FindAnyText returns the decoded text of the first element with the given
// tag anywhere in the tree, or "" when no such element exists. Used for
// loose identity tags (Serial, Exe) whose position varies across documents.
func (d *Document) FindAnyText(tag string) string {
	el := d.tree.FindElement("//" + tag)
	if el == nil {
		return ""
	}
	return DecodeValue(el.Text())
}

// replaceChildren swaps the full child-element set of parent for the given
// elements in order. The new subtree is always computed first so a write
// either lands completely or not at all.
func replaceChildren(parent *etree.Element, children []*etree.Element) {
	for _, ch := range parent.ChildElements() {
		parent.RemoveChild(ch)
	}
	for _, ch := range children {
		parent.AddChild(ch)
	}
}

// newTextElement builds a detached element whose text is the encoded form of value.
func newTextElement(tag, value string) *etree.Element {
	el := etree.NewElement(tag)
	el.SetText(EncodeValue(value))
	return el
}

// setChildText sets (creating on demand) a scalar child element's text to the
// encoded form of value, leaving sibling elements alone.
func setChildText(parent *etree.Element, tag, value string) {
	el := parent.SelectElement(tag)
	if el == nil {
		el = parent.CreateElement(tag)
	}
	el.SetText(EncodeValue(value))
}
