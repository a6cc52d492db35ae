// Package css parses the small stylesheet dialect the UI uses: .class and #id selectors
// with flat "key: value;" declarations.
package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel" or "#menu"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Parse parses a stylesheet. Rules whose selector is not a single .class or #id are
// skipped; comma separated selector lists produce one rule per selector.
func Parse(r io.Reader) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInput(r), false)
	var (
		selectors []string
		props     map[string]string
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return sheet, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selectors = append(selectors, splitSelectors(p.Values())...)
			if gt == css.QualifiedRuleGrammar {
				continue
			}
			props = make(map[string]string)
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if props == nil {
				continue
			}
			props[strings.ToLower(string(data))] = joinTokens(p.Values())
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				if validSelector(sel) {
					sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
				}
			}
			selectors, props = nil, nil
		}
	}
}

// ParseString is Parse over a string.
func ParseString(s string) (*Stylesheet, error) {
	return Parse(strings.NewReader(s))
}

func splitSelectors(tokens []css.Token) []string {
	var out []string
	var b strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.CommaToken {
			out = append(out, strings.TrimSpace(b.String()))
			b.Reset()
			continue
		}
		b.Write(t.Data)
	}
	return append(out, strings.TrimSpace(b.String()))
}

// joinTokens rebuilds a declaration value with single spaces between tokens.
func joinTokens(tokens []css.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		parts = append(parts, string(t.Data))
	}
	return strings.Join(parts, " ")
}

func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#>:+~[")
}
