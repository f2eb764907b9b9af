// Package calc evaluates one-line fraction expressions such as
// "3 1/2 + 0.25" or "1/2 < 2/3".
package calc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/aatomu/frac"
)

// AnsName refers to the previous result inside an expression.
const AnsName = "ans"

// Result is either a fraction or, for comparisons, a truth value.
type Result struct {
	Value   frac.Frac
	Truth   bool
	IsTruth bool
}

var arithmetic = map[string]func(frac.Frac, frac.Frac) (frac.Frac, error){
	"+": frac.Frac.Add,
	"-": frac.Frac.Sub,
	"*": frac.Frac.Mul,
	"/": frac.Frac.Div,
}

var relations = map[string]func(frac.Frac, frac.Frac) bool{
	"<":  frac.Frac.Less,
	"<=": frac.Frac.LessEq,
	">":  frac.Frac.Greater,
	">=": frac.Frac.GreaterEq,
	"==": frac.Frac.Equal,
	"!=": frac.Frac.NotEqual,
}

func isOperator(s string) bool {
	_, a := arithmetic[s]
	_, r := relations[s]
	return a || r
}

// Eval evaluates "<operand>" or "<operand> <op> <operand>". The operator must
// be separated from its operands by whitespace so that "1/2" stays a fraction
// and "-1/2" a negative one. ans stands for the previous result.
func Eval(line string, ans frac.Frac) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, errors.New("empty expression")
	}

	at := -1
	for i := 1; i < len(fields); i++ {
		if isOperator(fields[i]) {
			at = i
			break
		}
	}
	if at < 0 {
		v, err := operand(strings.Join(fields, " "), ans)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	}
	if at == len(fields)-1 {
		return Result{}, errors.Errorf("operator %q has no right operand", fields[at])
	}

	op := fields[at]
	left, err := operand(strings.Join(fields[:at], " "), ans)
	if err != nil {
		return Result{}, errors.Wrap(err, "left operand")
	}
	right, err := operand(strings.Join(fields[at+1:], " "), ans)
	if err != nil {
		return Result{}, errors.Wrap(err, "right operand")
	}

	if rel, ok := relations[op]; ok {
		return Result{Truth: rel(left, right), IsTruth: true}, nil
	}
	v, err := arithmetic[op](left, right)
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s %s %s", left, op, right)
	}
	return Result{Value: v}, nil
}

func operand(s string, ans frac.Frac) (frac.Frac, error) {
	if s == AnsName {
		return ans, nil
	}
	f, err := frac.ParseLine(s)
	if err != nil {
		return frac.Frac{}, errors.Wrapf(err, "read %q", s)
	}
	return f, nil
}
