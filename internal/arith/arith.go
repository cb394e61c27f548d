// Package arith evaluates the small infix arithmetic language the calculator
// emits: numbers (including E notation), + - * /, unary plus and minus,
// parentheses, pow(x, n) and sqrt(x), with the usual precedence and left
// associativity.
package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"
)

var (
	// ErrMalformed is returned for syntax errors, unknown functions and
	// wrong argument counts.
	ErrMalformed = errors.New("malformed expression")

	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidDomain is returned for math outside a function's domain and
	// for results that are not finite.
	ErrInvalidDomain = errors.New("invalid domain")
)

// function is a built-in with a fixed number of arguments.
type function struct {
	argc int
	body func(args []float64) (float64, error)
}

var builtins = map[string]function{
	"sqrt": {1, func(a []float64) (float64, error) {
		if a[0] < 0 {
			return 0, fmt.Errorf("%w: sqrt(%v)", ErrInvalidDomain, a[0])
		}
		return math.Sqrt(a[0]), nil
	}},
	"pow": {2, func(a []float64) (float64, error) {
		return math.Pow(a[0], a[1]), nil
	}},
}

// Evaluator evaluates arithmetic expressions. The zero value is not usable;
// call New.
type Evaluator struct {
	funcs map[string]function
}

// New returns an Evaluator with the sqrt and pow built-ins.
func New() *Evaluator {
	return &Evaluator{funcs: builtins}
}

// Evaluate parses and evaluates expr in one pass.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformed)
	}

	p := &parser{funcs: e.funcs}
	p.Init(strings.NewReader(expr))
	p.Mode = scanner.ScanIdents | scanner.ScanFloats
	p.Error = func(_ *scanner.Scanner, msg string) {
		if p.scanErr == nil {
			p.scanErr = fmt.Errorf("%w: %s", ErrMalformed, msg)
		}
	}
	p.next()

	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.tok != scanner.EOF {
		return 0, p.unexpected()
	}
	if p.scanErr != nil {
		return 0, p.scanErr
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: result is not finite", ErrInvalidDomain)
	}
	return v, nil
}

type parser struct {
	scanner.Scanner
	tok     rune
	funcs   map[string]function
	scanErr error
}

func (p *parser) next() {
	p.tok = p.Scan()
}

func (p *parser) unexpected() error {
	if p.tok == scanner.EOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrMalformed)
	}
	return fmt.Errorf("%w: unexpected %q at %s", ErrMalformed, p.TokenText(), p.Position)
}

// expression = term { ("+" | "-") term }
func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

// term = unary { ("*" | "/") unary }
func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= rhs
			continue
		}
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		v /= rhs
	}
	return v, nil
}

// unary = ("+" | "-") unary | factor
func (p *parser) unary() (float64, error) {
	switch p.tok {
	case '+':
		p.next()
		return p.unary()
	case '-':
		p.next()
		v, err := p.unary()
		return -v, err
	}
	return p.factor()
}

// factor = number | "(" expression ")" | ident "(" args ")"
func (p *parser) factor() (float64, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.TokenText(), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, p.TokenText())
		}
		p.next()
		return v, nil

	case '(':
		p.next()
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.tok != ')' {
			return 0, fmt.Errorf("%w: ')' expected", ErrMalformed)
		}
		p.next()
		return v, nil

	case scanner.Ident:
		name := p.TokenText()
		fn, ok := p.funcs[name]
		if !ok {
			return 0, fmt.Errorf("%w: unknown function %q", ErrMalformed, name)
		}
		p.next()
		args, err := p.args()
		if err != nil {
			return 0, err
		}
		if len(args) != fn.argc {
			return 0, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrMalformed, name, fn.argc, len(args))
		}
		return fn.body(args)
	}
	return 0, p.unexpected()
}

// args = "(" [ expression { "," expression } ] ")"
func (p *parser) args() ([]float64, error) {
	if p.tok != '(' {
		return nil, fmt.Errorf("%w: '(' expected", ErrMalformed)
	}
	p.next()

	var args []float64
	if p.tok == ')' {
		p.next()
		return args, nil
	}
	for {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		switch p.tok {
		case ')':
			p.next()
			return args, nil
		case ',':
			p.next()
		default:
			return nil, p.unexpected()
		}
	}
}
