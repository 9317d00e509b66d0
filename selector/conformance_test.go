package selector_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
	"github.com/kestrelcss/engine/htmlload"
	"github.com/kestrelcss/engine/selector"
	"github.com/kestrelcss/engine/vm"
)

// conformanceFixture pairs one selector with an HTML document to run it
// against; every element in the document is checked, and our VM's
// verdict must agree with cascadia's independent implementation for
// every one of them.
type conformanceFixture struct {
	name     string
	selector string
	document string
}

var conformanceFixtures = []conformanceFixture{
	{
		name:     "class selector",
		selector: ".container",
		document: `<div class="container"><span class="item"></span></div>`,
	},
	{
		name:     "descendant combinator",
		selector: "div span.item",
		document: `<div class="container"><span class="item"></span></div>`,
	},
	{
		name:     "child combinator",
		selector: "div > span",
		document: `<div><span>a</span><p><span>b</span></p></div>`,
	},
	{
		name:     "first and last child",
		selector: "li:first-child, li:last-child",
		document: `<ul><li>a</li><li>b</li><li>c</li></ul>`,
	},
	{
		name:     "nth-child even",
		selector: "li:nth-child(2n)",
		document: `<ul><li>a</li><li>b</li><li>c</li><li>d</li></ul>`,
	},
	{
		name:     "adjacent sibling",
		selector: "p + span",
		document: `<div><p>a</p><span>b</span><em>c</em></div>`,
	},
	{
		name:     "general sibling",
		selector: "p ~ em",
		document: `<div><p>a</p><span>b</span><em>c</em></div>`,
	},
	{
		name:     "attribute presence and equality",
		selector: `a[href], a[rel="nofollow"]`,
		document: `<a href="/x" rel="nofollow">x</a><a>y</a>`,
	},
	{
		name:     "id and compound",
		selector: "div#main.container",
		document: `<div id="main" class="container other"></div><div class="container"></div>`,
	},
	{
		name:     "only child and empty",
		selector: "span:only-child, br:empty",
		document: `<div><span>only</span></div><div><span>a</span><span>b</span></div><br>`,
	},
}

func TestConformanceAgainstCascadia(t *testing.T) {
	for _, fx := range conformanceFixtures {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			cascadiaSel, err := cascadia.Compile(fx.selector)
			require.NoError(t, err, "cascadia failed to compile %q", fx.selector)

			htmlDoc, err := html.Parse(strings.NewReader(fx.document))
			require.NoError(t, err)

			table := atom.NewTable()
			tree, root, err := htmlload.Load(strings.NewReader(fx.document), table)
			require.NoError(t, err)

			programs, _, err := selector.CompileList(table, fx.selector)
			require.NoError(t, err, "our compiler failed on %q", fx.selector)

			htmlElements := collectHTMLElements(htmlDoc)
			treeElements := collectTreeElements(tree, root)
			require.Equal(t, len(htmlElements), len(treeElements), "element count mismatch for %q", fx.document)

			for i := range htmlElements {
				want := cascadiaSel.Match(htmlElements[i])
				got := vm.MatchAny(programs, table, tree, treeElements[i])
				assert.Equal(t, want, got, "element #%d disagreement for selector %q", i, fx.selector)
			}
		})
	}
}

func collectHTMLElements(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func collectTreeElements(tree *domtree.Tree, root domtree.NodeID) []domtree.NodeID {
	var out []domtree.NodeID
	if root == domtree.NoNode {
		return out
	}
	var walk func(domtree.NodeID)
	walk = func(n domtree.NodeID) {
		if tree.IsElement(n) {
			out = append(out, n)
		}
		for c := range tree.Children(n) {
			walk(c)
		}
	}
	walk(root)
	return out
}
