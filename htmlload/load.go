package htmlload

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
)

// Load parses r as an HTML document and builds a domtree.Tree from it,
// interning every tag, attribute name, id and class through table. It
// returns the tree and the id of the document's single top-level
// element (ordinarily <html>); if the document has no element at all,
// root is domtree.NoNode.
func Load(r io.Reader, table *atom.Table) (*domtree.Tree, domtree.NodeID, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, domtree.NoNode, err
	}
	tree := domtree.NewTree(table)
	root := walkChildren(doc, tree, table, domtree.NoNode)
	return tree, root, nil
}

// walkChildren creates domtree nodes for every child of n under parent,
// recursing into element children, and returns the first node created
// directly under parent, element or text (or NoNode if none were).
func walkChildren(n *html.Node, tree *domtree.Tree, table *atom.Table, parent domtree.NodeID) domtree.NodeID {
	first := domtree.NoNode
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		created := walkNode(c, tree, table, parent)
		if first == domtree.NoNode && created != domtree.NoNode {
			first = created
		}
	}
	return first
}

// walkNode creates (at most) one domtree node for n, attaches it under
// parent, recurses into its children, and returns the created node id,
// or domtree.NoNode if n does not map to a domtree node (doctype,
// comment nodes). A document node creates nothing itself and returns
// what walkChildren returns for its children.
func walkNode(n *html.Node, tree *domtree.Tree, table *atom.Table, parent domtree.NodeID) domtree.NodeID {
	switch n.Type {
	case html.ElementNode:
		tagID, err := table.InternString(n.Data)
		if err != nil {
			tracer().Infof("htmlload: skipping element with unparseable tag name: %v", err)
			return domtree.NoNode
		}
		node := tree.CreateElement(tagID, parent)
		applyAttributes(n, node, tree, table)
		walkChildren(n, tree, table, node)
		return node

	case html.TextNode:
		return tree.CreateText(parent, []byte(n.Data))

	case html.DocumentNode:
		return walkChildren(n, tree, table, parent)

	default:
		// DoctypeNode, CommentNode, RawNode: not represented in the tree.
		return domtree.NoNode
	}
}

func applyAttributes(n *html.Node, node domtree.NodeID, tree *domtree.Tree, table *atom.Table) {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "id":
			idAtom, err := table.InternString(attr.Val)
			if err != nil {
				tracer().Infof("htmlload: skipping oversized id attribute: %v", err)
				continue
			}
			tree.SetID(node, idAtom)

		case "class":
			fields := strings.Fields(attr.Val)
			classes := make([]atom.AtomId, 0, len(fields))
			for _, f := range fields {
				classAtom, err := table.InternString(f)
				if err != nil {
					tracer().Infof("htmlload: skipping oversized class token: %v", err)
					continue
				}
				classes = append(classes, classAtom)
			}
			if err := tree.SetClasses(node, classes); err != nil {
				tracer().Infof("htmlload: %v", err)
			}

		default:
			nameAtom, err := table.InternString(attr.Key)
			if err != nil {
				tracer().Infof("htmlload: skipping oversized attribute name: %v", err)
				continue
			}
			tree.AddAttribute(node, nameAtom, []byte(attr.Val))
		}
	}
}
