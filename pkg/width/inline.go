package width

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseInline parses the contents of a style attribute into declarations, in
// source order. Malformed declarations are skipped.
func ParseInline(style string) []Declaration {
	p := css.NewParser(parse.NewInputString(style), true)

	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return decls
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value := joinTokens(p.Values())
			if value == "" {
				continue
			}
			decls = append(decls, Declaration{Property: string(data), Value: value})
		}
	}
}

// joinTokens rebuilds a value from tokens, collapsing whitespace runs.
func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// FormatInline serializes declarations as a style attribute value.
func FormatInline(decls []Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

// MergeInline sets decls on an existing style attribute. Properties already
// present are replaced in place; new ones are appended. Merging the same
// declarations again yields the same string.
func MergeInline(existing string, decls []Declaration) string {
	merged := ParseInline(existing)
	for _, d := range decls {
		replaced := false
		for i := range merged {
			if merged[i].Property == d.Property {
				merged[i].Value = d.Value
				replaced = true
			}
		}
		if !replaced {
			merged = append(merged, d)
		}
	}
	return FormatInline(merged)
}
