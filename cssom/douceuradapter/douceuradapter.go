package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	htmlatom "golang.org/x/net/html/atom"

	"github.com/kestrelcss/engine/cssom"
)

// CSSStyles adapts a douceur.css.Stylesheet to cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap takes ownership of a parsed douceur stylesheet.
func Wrap(c *css.Stylesheet) *CSSStyles {
	return &CSSStyles{css: *c}
}

// Parse parses CSS source text directly into a CSSStyles.
func Parse(src string) (*CSSStyles, error) {
	c, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty reports whether the stylesheet contains no rules.
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends another stylesheet's rules onto this one.
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othersheet := other.(*CSSStyles)
	for _, r := range othersheet.css.Rules {
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
}

// Rules returns every rule of the stylesheet, in source order.
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule adapts a douceur.css.Rule to cssom.Rule.
type Rule css.Rule

// Selector returns the rule's selector prelude, e.g. "div > p.intro".
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the rule's declared property keys.
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the declared value for key, or "" if key is absent.
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant reports whether key was declared with "!important".
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements walks a parsed HTML document's <head> and <body>
// for embedded <style> elements and parses each into a CSSStyles.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	sheets = append(sheets, extractStyles(findElement(htmlatom.Head, htmldoc))...)
	sheets = append(sheets, extractStyles(findElement(htmlatom.Body, htmldoc))...)
	return sheets
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != htmlatom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Infof("cssom: skipping malformed <style> block: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

func findElement(a htmlatom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
