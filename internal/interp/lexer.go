package interp

import (
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokOp
	tokKeyword
)

type token struct {
	kind tokenKind
	text string
	line int
}

var keywords = map[string]bool{
	"while": true, "if": true, "else": true,
	"not": true, "and": true, "or": true,
	"true": true, "false": true,
	"print": true, "input": true,
}

// lex splits src into tokens. Newlines are whitespace; '#' starts a comment.
func lex(src string) ([]token, error) {
	var out []token
	rs := []rune(src)
	line := 1
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == '\n':
			line++
			i++
		case unicode.IsSpace(c):
			i++
		case c == '#':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
		case c == '"':
			j := i + 1
			for j < len(rs) && rs[j] != '"' && rs[j] != '\n' {
				j++
			}
			if j >= len(rs) || rs[j] != '"' {
				return nil, errAt(line, ErrSyntax, "unterminated string")
			}
			out = append(out, token{kind: tokString, text: string(rs[i+1 : j]), line: line})
			i = j + 1
		case unicode.IsDigit(c):
			j := i
			kind := tokInt
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				if rs[j] == '.' {
					if kind == tokFloat {
						return nil, errAt(line, ErrSyntax, "malformed number %q", string(rs[i:j+1]))
					}
					kind = tokFloat
				}
				j++
			}
			out = append(out, token{kind: kind, text: string(rs[i:j]), line: line})
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			word := string(rs[i:j])
			kind := tokIdent
			if keywords[word] {
				kind = tokKeyword
			}
			out = append(out, token{kind: kind, text: word, line: line})
			i = j
		default:
			two := ""
			if i+1 < len(rs) {
				two = string(rs[i : i+2])
			}
			switch two {
			case ":=", "==", "!=", "<=", ">=":
				out = append(out, token{kind: tokOp, text: two, line: line})
				i += 2
				continue
			}
			switch c {
			case '(', ')', '{', '}', '+', '-', '*', '/', '%', '<', '>':
				out = append(out, token{kind: tokOp, text: string(c), line: line})
				i++
			default:
				return nil, errAt(line, ErrSyntax, "unexpected character %q", c)
			}
		}
	}
	out = append(out, token{kind: tokEOF, line: line})
	return out, nil
}
