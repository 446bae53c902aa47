package dialect

// Kind identifies the syndication dialect a handler was selected for.
type Kind int

const (
	Unknown Kind = iota
	Atom
	RSS1
	RSS09
	RSS2
)

const (
	NamespaceAtom       = "http://www.w3.org/2005/Atom"
	NamespaceAtomLegacy = "http://purl.org/atom/ns#"
	NamespaceRSS1       = "http://purl.org/rss/1.0/"
	NamespaceRSS09      = "http://my.netscape.com/rdf/simple/0.9/"
	NamespaceRDF        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceDC         = "http://purl.org/dc/elements/1.1/"
	NamespaceContent    = "http://purl.org/rss/1.0/modules/content/"
	NamespaceAdmin      = "http://webns.net/mvcb/"
	NamespaceXML        = "http://www.w3.org/XML/1998/namespace"
)

func (k Kind) String() string {
	switch k {
	case Atom:
		return "atom"
	case RSS1:
		return "rss1"
	case RSS09:
		return "rss09"
	case RSS2:
		return "rss2"
	default:
		return "unknown"
	}
}
