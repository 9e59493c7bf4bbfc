package talkfeed

// Node is a single element of a parsed page.
type Node interface {
	// Texts returns every literal text fragment inside the node, in
	// document order, including whitespace-only fragments.
	Texts() []string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// NextElement returns the sibling immediately following the node, but
	// only if that sibling is itself an element. Whitespace or other text
	// between two elements means there is no next element.
	NextElement() (Node, bool)
}

// DocumentView exposes structural queries over a parsed page.
// Selectors are CSS selectors.
type DocumentView interface {
	// Descend follows a chain of nested containers, taking the first match
	// of each selector inside the previous match.
	// Returns false if any step has no match.
	Descend(selectors ...string) (Node, bool)

	// SelectAll returns every node matching the selector in document order.
	SelectAll(selector string) []Node
}

// Parser parses raw HTML into a DocumentView.
type Parser interface {
	Parse(html string) (DocumentView, error)
}
