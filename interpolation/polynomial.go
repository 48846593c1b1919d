package interpolation

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Polynomial is an immutable polynomial with coefficients in ascending
// power order: coeffs[i] multiplies x^i.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial copies coeffs into a Polynomial. At least one coefficient
// is required.
func NewPolynomial(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, errors.NewValidationError("coeffs", "expect at least one coefficient", 0)
	}
	return Polynomial{coeffs: append([]float64(nil), coeffs...)}, nil
}

func constant(c float64) Polynomial {
	return Polynomial{coeffs: []float64{c}}
}

// Degree returns the highest power with a nonzero coefficient, or 0.
func (p Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}
	return 0
}

// Coefficient returns the coefficient of x^i; powers past the stored
// length are zero.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 {
		panic("interpolation: negative power")
	}
	if i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients.
func (p Polynomial) Coefficients() []float64 {
	return append([]float64(nil), p.coeffs...)
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]float64, max(len(p.coeffs), len(q.coeffs)))
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] += c
	}
	return Polynomial{coeffs: out}
}

// Sub returns p − q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Scale(-1))
}

// Mul returns p · q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return constant(0)
	}
	out := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return Polynomial{coeffs: out}
}

// Scale returns s · p.
func (p Polynomial) Scale(s float64) Polynomial {
	out := p.Coefficients()
	floats.Scale(s, out)
	return Polynomial{coeffs: out}
}

// Divide returns p / s. Division by zero fails.
func (p Polynomial) Divide(s float64) (Polynomial, error) {
	if s == 0 {
		return Polynomial{}, errors.Wrap(errors.ErrDivideByZero, "numkit: Polynomial.Divide")
	}
	return p.Scale(1 / s), nil
}

// Eval evaluates p at x with Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var sum float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		sum = sum*x + p.coeffs[i]
	}
	return sum
}

func (p Polynomial) String() string {
	var sb strings.Builder
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		if c > 0 && sb.Len() > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch {
		case i == 1:
			sb.WriteByte('x')
		case i > 1:
			sb.WriteString("x^" + strconv.Itoa(i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
