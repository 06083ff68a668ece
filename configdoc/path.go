package configdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Segment is one step of a document path: a tag plus an optional 1-based
// position among same-tag siblings. Index 0 means "first match".
type Segment struct {
	Tag   string
	Index int
}

// Path is an ordered sequence of segments resolved from the configuration
// root. Paths tolerate absence at every level: resolution of a missing
// segment yields no nodes, never an error.
type Path []Segment

// ParsePath builds a Path from a slash-separated expression such as
// "Liaisons_Externes/Agenda" or "Terminaux/Terminal[2]".
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty path expression")
	}
	parts := strings.Split(expr, "/")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path expression %q: empty segment", expr)
		}
		seg := Segment{Tag: part}
		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("invalid path segment %q: unterminated index", part)
			}
			idx, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil || idx < 1 {
				return nil, fmt.Errorf("invalid path segment %q: bad index", part)
			}
			seg.Tag = part[:open]
			seg.Index = idx
		}
		if seg.Tag == "" {
			return nil, fmt.Errorf("invalid path segment %q: missing tag", part)
		}
		path = append(path, seg)
	}
	return path, nil
}

// MustPath is ParsePath for package-level path constants.
func MustPath(expr string) Path {
	p, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (s Segment) pick(parent *etree.Element) *etree.Element {
	matches := parent.SelectElements(s.Tag)
	if len(matches) == 0 {
		return nil
	}
	if s.Index == 0 {
		return matches[0]
	}
	if s.Index > len(matches) {
		return nil
	}
	return matches[s.Index-1]
}

// Resolve walks the path from el and returns the matched element, or nil
// when any segment is absent.
func (p Path) Resolve(el *etree.Element) *etree.Element {
	cur := el
	for _, seg := range p {
		if cur == nil {
			return nil
		}
		cur = seg.pick(cur)
	}
	return cur
}

// ResolveAll resolves every segment but the last to its single match, then
// returns all same-tag siblings matched by the final segment in document
// order. A missing prefix yields an empty slice.
func (p Path) ResolveAll(el *etree.Element) []*etree.Element {
	if len(p) == 0 || el == nil {
		return nil
	}
	parent := p[:len(p)-1].Resolve(el)
	if parent == nil {
		return nil
	}
	last := p[len(p)-1]
	matches := parent.SelectElements(last.Tag)
	if last.Index != 0 {
		if last.Index > len(matches) {
			return nil
		}
		return matches[last.Index-1 : last.Index]
	}
	return matches
}

// Text resolves the path and returns its decoded text content. A missing
// node or empty text yields def.
func (p Path) Text(el *etree.Element, def string) string {
	target := p.Resolve(el)
	if target == nil {
		return def
	}
	decoded := DecodeValue(target.Text())
	if decoded == "" {
		return def
	}
	return decoded
}

// Ensure resolves the path, creating any missing segment along the way.
// Creation always appends; positional segments beyond the existing sibling
// count cannot be ensured and are created as a fresh trailing sibling.
func (p Path) Ensure(el *etree.Element) *etree.Element {
	cur := el
	for _, seg := range p {
		next := seg.pick(cur)
		if next == nil {
			next = cur.CreateElement(seg.Tag)
		}
		cur = next
	}
	return cur
}
