package mock

import "github.com/fwojciec/talkfeed"

// Compile-time interface verification.
var (
	_ talkfeed.DocumentView = (*DocumentView)(nil)
	_ talkfeed.Node         = (*Node)(nil)
	_ talkfeed.Parser       = (*Parser)(nil)
)

// DocumentView is a mock implementation of talkfeed.DocumentView.
type DocumentView struct {
	DescendFn   func(selectors ...string) (talkfeed.Node, bool)
	SelectAllFn func(selector string) []talkfeed.Node
}

func (d *DocumentView) Descend(selectors ...string) (talkfeed.Node, bool) {
	return d.DescendFn(selectors...)
}

func (d *DocumentView) SelectAll(selector string) []talkfeed.Node {
	return d.SelectAllFn(selector)
}

// Node is a static implementation of talkfeed.Node.
// A nil Next means the node has no next element sibling.
type Node struct {
	TextList []string
	Attrs    map[string]string
	Next     *Node
}

func (n *Node) Texts() []string {
	return n.TextList
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) NextElement() (talkfeed.Node, bool) {
	if n.Next == nil {
		return nil, false
	}
	return n.Next, true
}

// Parser is a mock implementation of talkfeed.Parser.
type Parser struct {
	ParseFn func(html string) (talkfeed.DocumentView, error)
}

func (p *Parser) Parse(html string) (talkfeed.DocumentView, error) {
	return p.ParseFn(html)
}
