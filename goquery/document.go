package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/talkfeed"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ talkfeed.Parser       = (*Parser)(nil)
	_ talkfeed.DocumentView = (*Document)(nil)
	_ talkfeed.Node         = (*Node)(nil)
)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML into a DocumentView.
func (p *Parser) Parse(rawHTML string) (talkfeed.DocumentView, error) {
	return Parse(rawHTML)
}

// Parse parses raw HTML into a Document.
func Parse(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, talkfeed.Errorf(talkfeed.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document implements talkfeed.DocumentView over a goquery document.
type Document struct {
	doc *goquery.Document
}

// Descend takes the first match of each selector inside the previous match.
func (d *Document) Descend(selectors ...string) (talkfeed.Node, bool) {
	if len(selectors) == 0 {
		return nil, false
	}

	sel := d.doc.Selection
	for _, selector := range selectors {
		sel = sel.Find(selector).First()
		if sel.Length() == 0 {
			return nil, false
		}
	}
	return &Node{node: sel.Nodes[0]}, true
}

// SelectAll returns every node matching the selector in document order.
func (d *Document) SelectAll(selector string) []talkfeed.Node {
	sel := d.doc.Find(selector)
	nodes := make([]talkfeed.Node, 0, sel.Length())
	for _, n := range sel.Nodes {
		nodes = append(nodes, &Node{node: n})
	}
	return nodes
}

// Node implements talkfeed.Node over an x/net/html element.
type Node struct {
	node *html.Node
}

// Texts returns the data of every descendant text node in document order.
func (n *Node) Texts() []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(parent *html.Node) {
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				texts = append(texts, c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n.node)
	return texts
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// NextElement returns the immediately following sibling if it is an element.
func (n *Node) NextElement() (talkfeed.Node, bool) {
	next := n.node.NextSibling
	if next == nil || next.Type != html.ElementNode {
		return nil, false
	}
	return &Node{node: next}, true
}
