// Package xml wraps the xmlquery DOM with the node helpers the LIFT codecs
// need: local-name element lookup, namespace-agnostic attribute access, and
// namespace-mode detection shared by the element and ranges codecs.
//
// Security note: xmlquery parses through Go's encoding/xml, which does not
// fetch external entities, so XXE is not a concern at this layer.
package xml

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Document represents a parsed XML document.
type Document struct {
	root *xmlquery.Node
}

// Node represents an XML element node.
type Node struct {
	node *xmlquery.Node
}

// NamespaceMode describes whether a document qualifies its elements with a
// namespace. Real LIFT producers emit both forms, so both are first-class.
type NamespaceMode int

const (
	// NamespaceBare means elements carry no namespace declaration.
	NamespaceBare NamespaceMode = iota
	// NamespaceQualified means elements are namespace-qualified.
	NamespaceQualified
)

func (m NamespaceMode) String() string {
	if m == NamespaceQualified {
		return "qualified"
	}
	return "bare"
}

// Parse parses XML data and returns a Document.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the root element of the document, or nil when the document
// has no element content.
func (d *Document) Root() *Node {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}
		}
	}
	return nil
}

// XPath executes an XPath query against the document and returns matching
// element nodes.
func (d *Document) XPath(expr string) ([]*Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}
	nodes, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{node: n}
	}
	return result, nil
}

// Name returns the element's local name, with any namespace prefix stripped.
func (n *Node) Name() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.Data
}

// NamespaceURI returns the namespace URI the element resolved to, or "".
func (n *Node) NamespaceURI() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.NamespaceURI
}

// Attr returns the value of the attribute with the given local name. The
// lookup ignores namespace prefixes, so id and lift:id both match "id".
func (n *Node) Attr(local string) string {
	v, _ := n.LookupAttr(local)
	return v
}

// LookupAttr returns an attribute value by local name and whether the
// attribute is present. Namespace declarations never match.
func (n *Node) LookupAttr(local string) (string, bool) {
	if n == nil || n.node == nil {
		return "", false
	}
	for _, attr := range n.node.Attr {
		if attr.Name.Local == local && attr.Name.Space != "xmlns" && attr.Name.Local != "xmlns" {
			return attr.Value, true
		}
	}
	return "", false
}

// Children returns the child element nodes in document order.
func (n *Node) Children() []*Node {
	if n == nil || n.node == nil {
		return nil
	}
	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// ChildrenNamed returns the child elements whose local name matches.
func (n *Node) ChildrenNamed(local string) []*Node {
	var out []*Node
	for _, child := range n.Children() {
		if child.Name() == local {
			out = append(out, child)
		}
	}
	return out
}

// FirstChildNamed returns the first child element with the local name, or nil.
func (n *Node) FirstChildNamed(local string) *Node {
	if n == nil || n.node == nil {
		return nil
	}
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.Data == local {
			return &Node{node: child}
		}
	}
	return nil
}

// Text returns the concatenated text content of the node and its descendants.
func (n *Node) Text() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// DetectNamespace inspects a root element and reports whether the document
// qualifies its elements with a namespace. The result applies to the whole
// document: LIFT producers do not mix qualified and bare names.
func DetectNamespace(root *Node) NamespaceMode {
	if root == nil || root.node == nil {
		return NamespaceBare
	}
	if root.node.NamespaceURI != "" {
		return NamespaceQualified
	}
	for _, attr := range root.node.Attr {
		if attr.Name.Local == "xmlns" || attr.Name.Space == "xmlns" {
			return NamespaceQualified
		}
	}
	return NamespaceBare
}

// Resolver performs element-name resolution parameterized by a detected
// namespace mode. Both codecs share it instead of re-implementing detection.
type Resolver struct {
	mode NamespaceMode
	uri  string
}

// NewResolver detects the namespace mode of the document rooted at root and
// returns a resolver for it. The expected URI is recorded so qualified
// documents in a foreign namespace can still be walked by local name.
func NewResolver(root *Node) *Resolver {
	r := &Resolver{mode: DetectNamespace(root)}
	if r.mode == NamespaceQualified && root != nil {
		r.uri = root.NamespaceURI()
	}
	return r
}

// Mode returns the detected namespace mode.
func (r *Resolver) Mode() NamespaceMode {
	return r.mode
}

// URI returns the namespace URI of a qualified document, or "".
func (r *Resolver) URI() string {
	return r.uri
}

// Is reports whether the node's resolved name matches the given local name
// under the detected mode. In qualified mode a node must either resolve to
// the document namespace or carry none at all (attribute-only children).
func (r *Resolver) Is(n *Node, local string) bool {
	if n == nil || n.Name() != local {
		return false
	}
	if r.mode == NamespaceQualified && r.uri != "" {
		ns := n.NamespaceURI()
		return ns == "" || ns == r.uri
	}
	return true
}
