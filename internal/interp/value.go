package interp

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the dynamic type of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Value is a tagged scalar.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	S    string
	B    bool
}

func Int(n int64) Value     { return Value{Kind: KindInt, I: n} }
func Float(f float64) Value { return Value{Kind: KindFloat, F: f} }
func Str(s string) Value    { return Value{Kind: KindString, S: s} }
func Bool(b bool) Value     { return Value{Kind: KindBool, B: b} }

func (v Value) numeric() bool { return v.Kind == KindInt || v.Kind == KindFloat }

func (v Value) float() float64 {
	if v.Kind == KindInt {
		return float64(v.I)
	}
	return v.F
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.F, 'g', -1, 64)
		if !math.IsInf(v.F, 0) && !math.IsNaN(v.F) && !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case KindString:
		return v.S
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	}
	return ""
}

// ParseValue reads a line of user input as int, float, bool or string.
func ParseValue(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Str(s)
}

func equal(a, b Value) bool {
	if a.numeric() && b.numeric() {
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I == b.I
		}
		return a.float() == b.float()
	}
	return a == b
}
