package interp

import (
	"strconv"
)

type parser struct {
	toks []token
	pos  int
}

// parse turns source text into a statement list.
func parse(src string) ([]stmt, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	stmts, err := p.block(false)
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) is(kind tokenKind, text string) bool {
	t := p.peek()
	return t.kind == kind && t.text == text
}

func (p *parser) expect(kind tokenKind, text string) error {
	t := p.next()
	if t.kind != kind || t.text != text {
		return errAt(t.line, ErrSyntax, "expected %q, found %s", text, describe(t))
	}
	return nil
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of program"
	}
	return strconv.Quote(t.text)
}

// block parses statements until EOF, or until '}' when nested.
func (p *parser) block(nested bool) ([]stmt, error) {
	var out []stmt
	for {
		t := p.peek()
		if t.kind == tokEOF {
			if nested {
				return nil, errAt(t.line, ErrSyntax, "missing '}'")
			}
			return out, nil
		}
		if nested && t.kind == tokOp && t.text == "}" {
			p.next()
			return out, nil
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}

func (p *parser) braced() ([]stmt, error) {
	if err := p.expect(tokOp, "{"); err != nil {
		return nil, err
	}
	return p.block(true)
}

func (p *parser) statement() (stmt, error) {
	t := p.next()
	switch {
	case t.kind == tokKeyword && t.text == "print":
		if err := p.expect(tokOp, "("); err != nil {
			return nil, err
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokOp, ")"); err != nil {
			return nil, err
		}
		return &printStmt{line: t.line, expr: e}, nil

	case t.kind == tokKeyword && t.text == "while":
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		body, err := p.braced()
		if err != nil {
			return nil, err
		}
		return &whileStmt{line: t.line, cond: cond, body: body}, nil

	case t.kind == tokKeyword && t.text == "if":
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		then, err := p.braced()
		if err != nil {
			return nil, err
		}
		s := &ifStmt{line: t.line, cond: cond, then: then}
		if p.is(tokKeyword, "else") {
			p.next()
			if p.is(tokKeyword, "if") {
				nested, err := p.statement()
				if err != nil {
					return nil, err
				}
				s.els = []stmt{nested}
			} else if s.els, err = p.braced(); err != nil {
				return nil, err
			}
		}
		return s, nil

	case t.kind == tokIdent:
		if err := p.expect(tokOp, ":="); err != nil {
			return nil, err
		}
		if p.is(tokKeyword, "input") {
			p.next()
			if err := p.expect(tokOp, "("); err != nil {
				return nil, err
			}
			var prompt expr = &litExpr{line: t.line, val: Str("")}
			if !p.is(tokOp, ")") {
				e, err := p.expr()
				if err != nil {
					return nil, err
				}
				prompt = e
			}
			if err := p.expect(tokOp, ")"); err != nil {
				return nil, err
			}
			return &inputStmt{line: t.line, name: t.text, prompt: prompt}, nil
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &assignStmt{line: t.line, name: t.text, expr: e}, nil
	}
	return nil, errAt(t.line, ErrSyntax, "unexpected %s", describe(t))
}

// Precedence, lowest first.
var binaryLevels = [][]string{
	{"or"},
	{"and"},
	{"==", "!=", "<", "<=", ">", ">="},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *parser) expr() (expr, error) { return p.binary(0) }

func (p *parser) binary(level int) (expr, error) {
	if level == len(binaryLevels) {
		return p.unary()
	}
	l, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if !(t.kind == tokOp || t.kind == tokKeyword) || !contains(binaryLevels[level], t.text) {
			return l, nil
		}
		p.next()
		r, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		l = &binaryExpr{line: t.line, op: t.text, l: l, r: r}
	}
}

func contains(ops []string, s string) bool {
	for _, o := range ops {
		if o == s {
			return true
		}
	}
	return false
}

func (p *parser) unary() (expr, error) {
	t := p.peek()
	if (t.kind == tokOp && t.text == "-") || (t.kind == tokKeyword && t.text == "not") {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{line: t.line, op: t.text, x: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (expr, error) {
	t := p.next()
	switch t.kind {
	case tokInt:
		n, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return nil, errAt(t.line, ErrSyntax, "bad integer %q", t.text)
		}
		return &litExpr{line: t.line, val: Int(n)}, nil
	case tokFloat:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, errAt(t.line, ErrSyntax, "bad number %q", t.text)
		}
		return &litExpr{line: t.line, val: Float(f)}, nil
	case tokString:
		return &litExpr{line: t.line, val: Str(t.text)}, nil
	case tokIdent:
		return &varExpr{line: t.line, name: t.text}, nil
	case tokKeyword:
		switch t.text {
		case "true":
			return &litExpr{line: t.line, val: Bool(true)}, nil
		case "false":
			return &litExpr{line: t.line, val: Bool(false)}, nil
		}
	case tokOp:
		if t.text == "(" {
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(tokOp, ")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, errAt(t.line, ErrSyntax, "unexpected %s", describe(t))
}
