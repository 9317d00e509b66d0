package atom

// WellKnown precomputes the FNV-1a hash of the CSS vocabulary a matching
// engine sees on essentially every document and every stylesheet: the
// common HTML tag names, plus the few attribute and property names the
// engine's own code names directly. Every value here is produced by the
// same Hash/HashString functions Table.Intern uses, so for any keyword k
// in this table, WellKnown[k] == HashString(k) == HashOf(Intern(k)) holds
// by construction, not by coincidence.
//
// A caller that only needs a keyword's hash — for a Bloom pre-check, say
// — can look it up here without touching a Table at all.
var WellKnown = map[string]uint32{
	"div":     HashString("div"),
	"span":    HashString("span"),
	"p":       HashString("p"),
	"a":       HashString("a"),
	"ul":      HashString("ul"),
	"ol":      HashString("ol"),
	"li":      HashString("li"),
	"table":   HashString("table"),
	"tr":      HashString("tr"),
	"td":      HashString("td"),
	"img":     HashString("img"),
	"input":   HashString("input"),
	"button":  HashString("button"),
	"h1":      HashString("h1"),
	"h2":      HashString("h2"),
	"head":    HashString("head"),
	"body":    HashString("body"),
	"html":    HashString("html"),

	"id":      HashString("id"),
	"class":   HashString("class"),
	"style":   HashString("style"),
	"href":    HashString("href"),

	"display": HashString("display"),
	"flex":    HashString("flex"),
	"block":   HashString("block"),
	"inline":  HashString("inline"),
	"none":    HashString("none"),
}

// KeywordHash returns the precomputed hash for keyword and true if
// keyword is in WellKnown, or (0, false) otherwise. Callers fall back to
// Table.Intern/HashOf for anything KeywordHash doesn't recognize.
func KeywordHash(keyword string) (uint32, bool) {
	h, ok := WellKnown[keyword]
	return h, ok
}
