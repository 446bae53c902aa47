package dialect

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

const legacyAtomNotice = "Atom 0.3 is deprecated, using the Atom 1.0 handler which will not provide all options"

// Detection is the outcome of classifying a document root.
type Detection struct {
	Kind Kind
	// Notice is a non-fatal message for the caller, set for legacy Atom.
	Notice string
}

// Detect classifies a document by the structural signals of its root
// element. Checks run in a fixed order and the first match wins.
func Detect(root *xmlquery.Node) (Detection, error) {
	if root == nil || root.Type != xmlquery.ElementNode {
		return Detection{}, &ClassificationError{Reason: "document has no root element"}
	}

	switch root.NamespaceURI {
	case NamespaceAtom:
		return Detection{Kind: Atom}, nil
	case NamespaceAtomLegacy:
		return Detection{Kind: Atom, Notice: legacyAtomNotice}, nil
	}

	// The second child is the channel in a pretty-printed RDF document; the
	// first one is usually whitespace.
	if second := childNode(root, 1); second != nil {
		switch second.NamespaceURI {
		case NamespaceRSS1:
			return Detection{Kind: RSS1}, nil
		case NamespaceRSS09:
			return Detection{Kind: RSS09}, nil
		}
	}

	if root.Data == "rss" {
		version := attrValue(root, "version", "", "")
		if isVersion2(version) {
			return Detection{Kind: RSS2}, nil
		}
		reason := "missing version attribute"
		if version != "" {
			reason = "unsupported RSS version " + strconv.Quote(version)
		}
		return Detection{}, &ClassificationError{Root: root.Data, Namespace: root.NamespaceURI, Reason: reason}
	}

	return Detection{}, &ClassificationError{Root: root.Data, Namespace: root.NamespaceURI, Reason: "no dialect matches"}
}

// isVersion2 compares numerically so "2", "2.0" and "2.00" all match.
func isVersion2(version string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(version), 64)
	return err == nil && v == 2
}
