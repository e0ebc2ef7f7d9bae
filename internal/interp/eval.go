package interp

func (in *Interpreter) eval(e expr) (Value, error) {
	switch e := e.(type) {
	case *litExpr:
		return e.val, nil
	case *varExpr:
		v, ok := in.vars[e.name]
		if !ok {
			return Value{}, errAt(e.line, ErrUnknownVariable, "%s", e.name)
		}
		return v, nil
	case *unaryExpr:
		x, err := in.eval(e.x)
		if err != nil {
			return Value{}, err
		}
		return unary(e.line, e.op, x)
	case *binaryExpr:
		if e.op == "and" || e.op == "or" {
			return in.logical(e)
		}
		l, err := in.eval(e.l)
		if err != nil {
			return Value{}, err
		}
		r, err := in.eval(e.r)
		if err != nil {
			return Value{}, err
		}
		return binary(e.line, e.op, l, r)
	}
	return Value{}, ErrSyntax
}

func (in *Interpreter) logical(e *binaryExpr) (Value, error) {
	l, err := in.eval(e.l)
	if err != nil {
		return Value{}, err
	}
	if l.Kind != KindBool {
		return Value{}, errAt(e.line, ErrTypeMismatch, "%s %s", l.Kind, e.op)
	}
	if (e.op == "and" && !l.B) || (e.op == "or" && l.B) {
		return l, nil
	}
	r, err := in.eval(e.r)
	if err != nil {
		return Value{}, err
	}
	if r.Kind != KindBool {
		return Value{}, errAt(e.line, ErrTypeMismatch, "%s %s", e.op, r.Kind)
	}
	return r, nil
}

func unary(line int, op string, x Value) (Value, error) {
	switch op {
	case "-":
		switch x.Kind {
		case KindInt:
			return Int(-x.I), nil
		case KindFloat:
			return Float(-x.F), nil
		}
	case "not":
		if x.Kind == KindBool {
			return Bool(!x.B), nil
		}
	}
	return Value{}, errAt(line, ErrTypeMismatch, "%s %s", op, x.Kind)
}

func binary(line int, op string, l, r Value) (Value, error) {
	mismatch := func() (Value, error) {
		return Value{}, errAt(line, ErrTypeMismatch, "%s %s %s", l.Kind, op, r.Kind)
	}
	switch op {
	case "==":
		return Bool(equal(l, r)), nil
	case "!=":
		return Bool(!equal(l, r)), nil
	case "+":
		if l.Kind == KindString || r.Kind == KindString {
			return Str(l.String() + r.String()), nil
		}
	}

	if l.Kind == KindString && r.Kind == KindString {
		switch op {
		case "<":
			return Bool(l.S < r.S), nil
		case "<=":
			return Bool(l.S <= r.S), nil
		case ">":
			return Bool(l.S > r.S), nil
		case ">=":
			return Bool(l.S >= r.S), nil
		}
		return mismatch()
	}
	if !l.numeric() || !r.numeric() {
		return mismatch()
	}

	if l.Kind == KindInt && r.Kind == KindInt {
		a, b := l.I, r.I
		switch op {
		case "+":
			return Int(a + b), nil
		case "-":
			return Int(a - b), nil
		case "*":
			return Int(a * b), nil
		case "/", "%":
			if b == 0 {
				return Value{}, errAt(line, ErrDivisionByZero, "%d %s 0", a, op)
			}
			if op == "/" {
				return Int(a / b), nil
			}
			return Int(a % b), nil
		}
	} else {
		a, b := l.float(), r.float()
		switch op {
		case "+":
			return Float(a + b), nil
		case "-":
			return Float(a - b), nil
		case "*":
			return Float(a * b), nil
		case "/":
			if b == 0 {
				return Value{}, errAt(line, ErrDivisionByZero, "%s / 0", l)
			}
			return Float(a / b), nil
		case "%":
			return mismatch()
		}
	}

	a, b := l.float(), r.float()
	switch op {
	case "<":
		return Bool(a < b), nil
	case "<=":
		return Bool(a <= b), nil
	case ">":
		return Bool(a > b), nil
	case ">=":
		return Bool(a >= b), nil
	}
	return mismatch()
}
