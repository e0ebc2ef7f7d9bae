package interp

type stmt interface{ stmtLine() int }

type assignStmt struct {
	line int
	name string
	expr expr
}

// inputStmt is `name := input(prompt)`.
type inputStmt struct {
	line   int
	name   string
	prompt expr
}

type printStmt struct {
	line int
	expr expr
}

type whileStmt struct {
	line int
	cond expr
	body []stmt
}

type ifStmt struct {
	line int
	cond expr
	then []stmt
	els  []stmt
}

func (s *assignStmt) stmtLine() int { return s.line }
func (s *inputStmt) stmtLine() int  { return s.line }
func (s *printStmt) stmtLine() int  { return s.line }
func (s *whileStmt) stmtLine() int  { return s.line }
func (s *ifStmt) stmtLine() int     { return s.line }

type expr interface{ exprLine() int }

type litExpr struct {
	line int
	val  Value
}

type varExpr struct {
	line int
	name string
}

type unaryExpr struct {
	line int
	op   string
	x    expr
}

type binaryExpr struct {
	line int
	op   string
	l, r expr
}

func (e *litExpr) exprLine() int    { return e.line }
func (e *varExpr) exprLine() int    { return e.line }
func (e *unaryExpr) exprLine() int  { return e.line }
func (e *binaryExpr) exprLine() int { return e.line }
