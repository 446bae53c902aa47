package dialect

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

var errNoItem = errors.New("entry produced no item")

// Entry is one materialized feed item. The embedded gofeed.Item carries the
// dialect-neutral fields; ID is the identifier under the dialect's rules.
type Entry struct {
	*gofeed.Item

	ID     string
	Offset int
	Kind   Kind

	node *xmlquery.Node
}

// Node returns the element the entry was materialized from.
func (e *Entry) Node() *xmlquery.Node {
	return e.node
}

// Query evaluates a compiled expression with the entry's element as the
// context node.
func (e *Entry) Query(expr *xpath.Expr) []*xmlquery.Node {
	if e.node == nil {
		return nil
	}
	return xmlquery.QuerySelectorAll(e.node, expr)
}

// String serializes the source element.
func (e *Entry) String() string {
	return e.node.OutputXML(true)
}

func missingField(names ...string) error {
	return fmt.Errorf("required element <%s> is missing", strings.Join(names, "> or <"))
}

// wrapEntry builds a standalone document holding only node. gofeed reads
// any prefixed element as an extension, so elements in the entry's own
// namespace are written unprefixed under a default declaration. Other
// namespace declarations in scope, and the inherited xml:base and xml:lang,
// are carried onto the new root.
func wrapEntry(kind Kind, node *xmlquery.Node) string {
	ns := node.NamespaceURI

	decls := namespacesInScope(node.Parent)
	for prefix, uri := range decls {
		if prefix == "" || uri == ns {
			delete(decls, prefix)
		}
	}
	if ns != "" {
		decls[""] = ns
	}

	var b strings.Builder
	switch kind {
	case Atom:
		b.WriteString("<feed")
		writeNamespaceDecls(&b, decls)
		writeInheritedContext(&b, node)
		b.WriteString(">")
		writeEntryNode(&b, node, ns, ns)
		b.WriteString("</feed>")
	case RSS2:
		b.WriteString(`<rss version="2.0"`)
		writeNamespaceDecls(&b, decls)
		writeInheritedContext(&b, node)
		b.WriteString("><channel>")
		writeEntryNode(&b, node, ns, ns)
		b.WriteString("</channel></rss>")
	default:
		if _, ok := decls["rdf"]; !ok {
			decls["rdf"] = NamespaceRDF
		}
		b.WriteString("<rdf:RDF")
		writeNamespaceDecls(&b, decls)
		writeInheritedContext(&b, node)
		b.WriteString(">")
		writeEntryNode(&b, node, ns, ns)
		b.WriteString("</rdf:RDF>")
	}
	return b.String()
}

// inheritedContext returns the effective xml:base and the nearest xml:lang
// declared above node.
func inheritedContext(node *xmlquery.Node) (base, lang string) {
	var bases []string
	for p := node.Parent; p != nil; p = p.Parent {
		if p.Type != xmlquery.ElementNode {
			continue
		}
		if lang == "" {
			lang = attrValue(p, "lang", NamespaceXML, "xml")
		}
		if v := attrValue(p, "base", NamespaceXML, "xml"); v != "" {
			bases = append(bases, v)
		}
	}

	// outermost first, each base resolved against the one enclosing it
	var resolved *url.URL
	for i := len(bases) - 1; i >= 0; i-- {
		u, err := url.Parse(strings.TrimSpace(bases[i]))
		if err != nil {
			continue
		}
		if resolved != nil {
			u = resolved.ResolveReference(u)
		}
		resolved = u
	}
	if resolved != nil {
		base = resolved.String()
	}
	return base, lang
}

func writeInheritedContext(b *strings.Builder, node *xmlquery.Node) {
	base, lang := inheritedContext(node)
	if base != "" {
		fmt.Fprintf(b, ` xml:base="%s"`, html.EscapeString(base))
	}
	if lang != "" {
		fmt.Fprintf(b, ` xml:lang="%s"`, html.EscapeString(lang))
	}
}

// writeEntryNode serializes n with elements in ns unprefixed. defaultNS is
// the default namespace in effect for n's parent; it is redeclared wherever
// an unprefixed element needs a different one.
func writeEntryNode(b *strings.Builder, n *xmlquery.Node, ns, defaultNS string) {
	switch n.Type {
	case xmlquery.TextNode:
		b.WriteString(html.EscapeString(n.Data))
		return
	case xmlquery.CharDataNode:
		b.WriteString("<![CDATA[")
		b.WriteString(n.Data)
		b.WriteString("]]>")
		return
	case xmlquery.ElementNode:
	default:
		return
	}

	name := n.Data
	redeclare := false
	if n.NamespaceURI != ns && n.Prefix != "" {
		name = n.Prefix + ":" + n.Data
	} else if n.NamespaceURI != defaultNS {
		defaultNS = n.NamespaceURI
		redeclare = true
	}

	b.WriteString("<")
	b.WriteString(name)
	if redeclare {
		fmt.Fprintf(b, ` xmlns="%s"`, html.EscapeString(defaultNS))
	}
	for _, a := range n.Attr {
		if prefix, ok := isNamespaceDecl(a); ok && (prefix == "" || a.Value == ns) {
			continue
		}
		b.WriteString(" ")
		if a.Name.Space != "" && a.NamespaceURI != ns {
			b.WriteString(a.Name.Space)
			b.WriteString(":")
		}
		b.WriteString(a.Name.Local)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeEntryNode(b, c, ns, defaultNS)
	}

	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

// parseItem runs the wrapped entry through gofeed's dialect parser and
// translator and returns the single resulting item.
func parseItem(kind Kind, node *xmlquery.Node) (*gofeed.Item, error) {
	doc := wrapEntry(kind, node)

	var (
		translated *gofeed.Feed
		err        error
	)
	if kind == Atom {
		parsed, perr := (&atom.Parser{}).Parse(strings.NewReader(doc))
		if perr != nil {
			return nil, fmt.Errorf("failed to parse entry: %w", perr)
		}
		translated, err = (&gofeed.DefaultAtomTranslator{}).Translate(parsed)
	} else {
		parsed, perr := (&rss.Parser{}).Parse(strings.NewReader(doc))
		if perr != nil {
			return nil, fmt.Errorf("failed to parse item: %w", perr)
		}
		translated, err = (&gofeed.DefaultRSSTranslator{}).Translate(parsed)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to translate entry: %w", err)
	}
	if translated == nil || len(translated.Items) == 0 || translated.Items[0] == nil {
		return nil, errNoItem
	}
	return translated.Items[0], nil
}
