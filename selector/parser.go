package selector

import "fmt"

// parseSelectorList splits src on top-level commas and parses each
// piece into a chain, the way a CSS selector list ("a, b.c") compiles to
// one program per comma-separated alternative.
func parseSelectorList(src string) ([]chain, []Diagnostic, error) {
	var chains []chain
	var diags []Diagnostic
	for _, piece := range splitTopLevelCommas(src) {
		c, d, err := parseChain(piece)
		if err != nil {
			return nil, diags, err
		}
		chains = append(chains, c)
		diags = append(diags, d...)
	}
	return chains, diags, nil
}

func splitTopLevelCommas(src string) []string {
	var parts []string
	depth := 0
	start := 0
	var inQuote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inQuote != 0 {
			if c == inQuote {
				inQuote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			inQuote = c
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, src[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, src[start:])
	return parts
}

// parseChain parses a single comma-free selector into a chain of
// compounds and the combinators between them.
func parseChain(src string) (chain, []Diagnostic, error) {
	l := newLexer(src)
	// Leading whitespace (e.g. after a list comma) is not a combinator.
	for isSpace(l.peekByte()) {
		l.pos++
	}
	var c chain
	var diags []Diagnostic

	cur, d, err := parseCompound(l)
	if err != nil {
		return chain{}, diags, err
	}
	diags = append(diags, d...)
	if len(cur.simples) == 0 {
		return chain{}, diags, fmt.Errorf("selector: empty selector")
	}
	c.compounds = append(c.compounds, cur)

	for {
		tok, err := l.next()
		if err != nil {
			return chain{}, diags, err
		}
		if tok.kind == tokEOF {
			break
		}
		if tok.kind != tokCombinator {
			return chain{}, diags, fmt.Errorf("selector: expected combinator, got %q", tok.text)
		}
		comb := combDescendant
		switch tok.text {
		case " ":
			comb = combDescendant
		case ">":
			comb = combChild
		case "+":
			comb = combAdjacent
		case "~":
			comb = combSibling
		}
		cur, d, err := parseCompound(l)
		if err != nil {
			return chain{}, diags, err
		}
		diags = append(diags, d...)
		if len(cur.simples) == 0 {
			return chain{}, diags, fmt.Errorf("selector: missing compound after combinator")
		}
		c.combinators = append(c.combinators, comb)
		c.compounds = append(c.compounds, cur)
	}
	return c, diags, nil
}

// parseCompound consumes simple selectors until a combinator or EOF is
// seen. The caller is responsible for un-consuming nothing: the lexer
// has no pushback, so a trailing combinator token is returned to the
// caller by simply stopping before consuming it — parseCompound peeks
// by re-lexing from a saved position when it sees a token it doesn't
// own.
func parseCompound(l *lexer) (compound, []Diagnostic, error) {
	var c compound
	var diags []Diagnostic

	for {
		save := l.pos
		tok, err := l.next()
		if err != nil {
			return c, diags, err
		}
		switch tok.kind {
		case tokEOF, tokComma:
			l.pos = save
			return c, diags, nil
		case tokCombinator:
			l.pos = save
			return c, diags, nil
		case tokStar:
			c.simples = append(c.simples, simpleSelector{kind: simpleUniversal})
		case tokIdent:
			c.simples = append(c.simples, simpleSelector{kind: simpleTag, name: tok.text})
		case tokHash:
			id, err := expectIdent(l)
			if err != nil {
				return c, diags, err
			}
			c.simples = append(c.simples, simpleSelector{kind: simpleID, value: id})
		case tokDot:
			cls, err := expectIdent(l)
			if err != nil {
				return c, diags, err
			}
			c.simples = append(c.simples, simpleSelector{kind: simpleClass, value: cls})
		case tokLBracket:
			attr, err := parseAttr(l)
			if err != nil {
				return c, diags, err
			}
			c.simples = append(c.simples, attr)
		case tokColon:
			pseudo, d, err := parsePseudo(l)
			if err != nil {
				return c, diags, err
			}
			diags = append(diags, d...)
			if pseudo != nil {
				c.simples = append(c.simples, *pseudo)
			}
		default:
			l.pos = save
			return c, diags, fmt.Errorf("selector: unexpected token in compound selector")
		}
	}
}

func expectIdent(l *lexer) (string, error) {
	tok, err := l.next()
	if err != nil {
		return "", err
	}
	if tok.kind != tokIdent {
		return "", fmt.Errorf("selector: expected identifier")
	}
	return tok.text, nil
}

// parseAttr parses the body of "[name]", "[name=value]",
// "[name~=value]", "[name^=value]", "[name$=value]", "[name*=value]"
// after the opening '[' has already been consumed.
func parseAttr(l *lexer) (simpleSelector, error) {
	name, err := expectIdent(l)
	if err != nil {
		return simpleSelector{}, err
	}
	tok, err := l.next()
	if err != nil {
		return simpleSelector{}, err
	}
	if tok.kind == tokRBracket {
		return simpleSelector{kind: simpleAttr, name: name, attrOp: attrOpNone}, nil
	}

	op := attrOpEq
	switch {
	case tok.kind == tokEq:
		op = attrOpEq
	case tok.kind == tokCombinator && tok.text == "~":
		op = attrOpWord
	case tok.kind == tokCaret:
		op = attrOpPrefix
	case tok.kind == tokDollar:
		op = attrOpSuffix
	case tok.kind == tokStar:
		op = attrOpSubstr
	default:
		return simpleSelector{}, fmt.Errorf("selector: unsupported attribute operator near %q", name)
	}
	if op != attrOpEq {
		eqTok, err := l.next()
		if err != nil {
			return simpleSelector{}, err
		}
		if eqTok.kind != tokEq {
			return simpleSelector{}, fmt.Errorf("selector: expected '=' in attribute selector for %q", name)
		}
	}

	valTok, err := l.next()
	if err != nil {
		return simpleSelector{}, err
	}
	var value string
	switch valTok.kind {
	case tokString:
		value = valTok.text
	case tokIdent:
		value = valTok.text
	default:
		return simpleSelector{}, fmt.Errorf("selector: expected attribute value for %q", name)
	}

	closeTok, err := l.next()
	if err != nil {
		return simpleSelector{}, err
	}
	if closeTok.kind != tokRBracket {
		return simpleSelector{}, fmt.Errorf("selector: unterminated attribute selector for %q", name)
	}
	return simpleSelector{kind: simpleAttr, name: name, value: value, attrOp: op}, nil
}

// parsePseudo parses a pseudo-class after the leading ':' (or '::') has
// already been consumed. Unknown pseudo-classes produce a Diagnostic and
// a nil *simpleSelector rather than a hard compile error, per the
// compiler's silently-ignore-with-diagnostic policy for this class of
// input.
func parsePseudo(l *lexer) (*simpleSelector, []Diagnostic, error) {
	name, err := expectIdent(l)
	if err != nil {
		return nil, nil, err
	}

	switch name {
	case "first-child":
		return &simpleSelector{kind: simplePseudoFirstChild}, nil, nil
	case "last-child":
		return &simpleSelector{kind: simplePseudoLastChild}, nil, nil
	case "only-child":
		return &simpleSelector{kind: simplePseudoOnlyChild}, nil, nil
	case "empty":
		return &simpleSelector{kind: simplePseudoEmpty}, nil, nil
	case "root":
		return &simpleSelector{kind: simplePseudoRoot}, nil, nil
	case "nth-child", "nth-last-child":
		arg, err := parsePseudoArg(l)
		if err != nil {
			return nil, nil, err
		}
		f, err := parseNth(arg)
		if err != nil {
			return nil, []Diagnostic{{Message: err.Error()}}, nil
		}
		kind := simpleNthChild
		if name == "nth-last-child" {
			kind = simpleNthLastChild
		}
		return &simpleSelector{kind: kind, nth: f}, nil, nil
	default:
		// Unknown pseudo-class: not a hard error. If it carries an
		// argument list, consume and discard it so the rest of the
		// compound still parses.
		if l.peekByte() == '(' {
			if _, err := parsePseudoArg(l); err != nil {
				return nil, nil, err
			}
		}
		return nil, []Diagnostic{{Message: fmt.Sprintf("selector: unknown pseudo-class %q ignored", name)}}, nil
	}
}

// parsePseudoArg consumes "(...)" and returns the raw text inside, up to
// the ')' that balances the opening one (nested parentheses are counted).
func parsePseudoArg(l *lexer) (string, error) {
	tok, err := l.next()
	if err != nil {
		return "", err
	}
	if tok.kind != tokLParen {
		return "", fmt.Errorf("selector: expected '(' after pseudo-class")
	}
	start := l.pos
	depth := 1
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				arg := string(l.src[start:l.pos])
				l.pos++
				return arg, nil
			}
		}
		l.pos++
	}
	return "", fmt.Errorf("selector: unterminated pseudo-class argument")
}
