package dialect

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Prefixes usable in Select expressions.
var selectNamespaces = map[string]string{
	"atom":    NamespaceAtom,
	"atom03":  NamespaceAtomLegacy,
	"rss":     NamespaceRSS1,
	"rss09":   NamespaceRSS09,
	"rdf":     NamespaceRDF,
	"dc":      NamespaceDC,
	"content": NamespaceContent,
}

// RootElement returns the document element of a parsed document, or nil.
func RootElement(doc *xmlquery.Node) *xmlquery.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == xmlquery.ElementNode {
		return doc
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// childNode returns the i-th child node of n counting every node type, the
// way a DOM childNodes list does.
func childNode(n *xmlquery.Node, i int) *xmlquery.Node {
	idx := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if idx == i {
			return c
		}
		idx++
	}
	return nil
}

func childElements(n *xmlquery.Node, local, namespace string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local && c.NamespaceURI == namespace {
			out = append(out, c)
		}
	}
	return out
}

func childElement(n *xmlquery.Node, local, namespace string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local && c.NamespaceURI == namespace {
			return c
		}
	}
	return nil
}

func childText(n *xmlquery.Node, local, namespace string) string {
	c := childElement(n, local, namespace)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.InnerText())
}

// anyChildText matches on local name only, in any namespace.
func anyChildText(n *xmlquery.Node, local string) (string, bool) {
	if n == nil {
		return "", false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local {
			return strings.TrimSpace(c.InnerText()), true
		}
	}
	return "", false
}

// attrValue looks an attribute up by local name. When namespace is set the
// attribute must carry that namespace, either resolved or by its usual prefix.
func attrValue(n *xmlquery.Node, local, namespace, prefix string) string {
	for _, a := range n.Attr {
		if a.Name.Local != local {
			continue
		}
		if namespace == "" {
			if a.Name.Space == "" {
				return a.Value
			}
			continue
		}
		if a.NamespaceURI == namespace || a.Name.Space == namespace || (prefix != "" && a.Name.Space == prefix) {
			return a.Value
		}
	}
	return ""
}

func isNamespaceDecl(a xmlquery.Attr) (prefix string, ok bool) {
	switch {
	case a.Name.Space == "xmlns":
		return a.Name.Local, true
	case a.Name.Space == "" && a.Name.Local == "xmlns":
		return "", true
	}
	return "", false
}

// namespacesInScope collects the xmlns declarations visible at n. The
// nearest declaration of a prefix wins.
func namespacesInScope(n *xmlquery.Node) map[string]string {
	decls := make(map[string]string)
	for p := n; p != nil; p = p.Parent {
		if p.Type != xmlquery.ElementNode {
			continue
		}
		for _, a := range p.Attr {
			prefix, ok := isNamespaceDecl(a)
			if !ok {
				continue
			}
			if _, seen := decls[prefix]; !seen {
				decls[prefix] = a.Value
			}
		}
	}
	return decls
}

func writeNamespaceDecls(b *strings.Builder, decls map[string]string) {
	prefixes := make([]string, 0, len(decls))
	for prefix := range decls {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		b.WriteString(" xmlns")
		if prefix != "" {
			b.WriteString(":")
			b.WriteString(prefix)
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(decls[prefix]))
		b.WriteString(`"`)
	}
}

// CompileSelect compiles an XPath expression with the Select prefixes bound.
func CompileSelect(expr string) (*xpath.Expr, error) {
	compiled, err := xpath.CompileWithNS(expr, selectNamespaces)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath expression %q: %w", expr, err)
	}
	return compiled, nil
}

func selectNodes(top *xmlquery.Node, expr string) ([]*xmlquery.Node, error) {
	compiled, err := CompileSelect(expr)
	if err != nil {
		return nil, err
	}
	return xmlquery.QuerySelectorAll(top, compiled), nil
}
