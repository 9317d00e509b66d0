package cssom

// StyleSheet abstracts a parsed CSS stylesheet so that the caller never
// has to depend on the concrete parser producing it. A stylesheet is
// just a list of rules; what a rule's selector compiles to, and what
// happens to its declarations, is entirely up to the caller. Package
// douceuradapter only exposes the parsed rules; it does not call
// selector.Compile and does not forward declarations anywhere.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain no rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is one selector-and-declarations group within a StyleSheet.
type Rule interface {
	Selector() string         // the prelude, e.g. "div > p.intro"
	Properties() []string     // declared property keys, e.g. "margin-top"
	Value(key string) string  // the declared value for key, e.g. "15px"
	IsImportant(key string) bool
}
