// Package xmltree provides a generic, attribute-preserving XML node tree
// used to walk the SOAP envelope. The remote service's namespace prefixes
// differ between environments, so element lookup always runs over an
// ordered list of candidate names instead of a single hard-coded key.
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is one element of the parsed tree. A node is the tagged variant of
// the protocol: a pure text payload (no children, Text set) or an element
// carrying children. Attrs preserves the element's attributes, Space its
// namespace or prefix as seen by the decoder.
type Node struct {
	Name     string // local element name
	Space    string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Parse reads an XML document into a Node tree. Character data is
// whitespace-trimmed. Documents declaring a non-UTF-8 encoding are decoded
// through charset.NewReaderLabel.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Space: t.Name.Space}
			if len(t.Attr) > 0 {
				n.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				if text := strings.TrimSpace(string(t)); text != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}
	return root, nil
}

// localName strips an optional "prefix:" from a candidate key.
func localName(name string) string {
	if i := strings.LastIndex(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Child returns the first direct child matching one of the candidate
// names, tried in order. A candidate may carry a prefix ("soap:Body");
// matching is on the local part so any prefix spelling the remote uses is
// accepted.
func (n *Node) Child(names ...string) *Node {
	if n == nil {
		return nil
	}
	for _, name := range names {
		want := localName(name)
		for _, c := range n.Children {
			if c.Name == want {
				return c
			}
		}
	}
	return nil
}

// ChildContaining returns the first direct child whose local name contains
// the given substring, case-insensitively. Used as the last-resort scan
// for the result payload.
func (n *Node) ChildContaining(sub string) *Node {
	if n == nil {
		return nil
	}
	sub = strings.ToLower(sub)
	for _, c := range n.Children {
		if strings.Contains(strings.ToLower(c.Name), sub) {
			return c
		}
	}
	return nil
}

// FlattenText reduces either node shape to a plain string: a text node
// yields its own text, an element node the concatenation of its direct
// children's text. The result payload arrives in both shapes depending on
// the remote environment.
func (n *Node) FlattenText() string {
	if n == nil {
		return ""
	}
	if n.Text != "" || len(n.Children) == 0 {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.FlattenText())
	}
	return b.String()
}

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// IsEntityEncoded reports whether a result payload arrived with its angle
// brackets HTML-entity-encoded instead of CDATA-wrapped.
func IsEntityEncoded(s string) bool {
	return strings.Contains(s, "&lt;") || strings.Contains(s, "&gt;")
}

// DecodeEntities reverses the HTML-entity encoding some remote
// environments apply to the embedded result document.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
