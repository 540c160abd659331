package backend

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// DecimalParams are the arbitrary-precision decimal context parameters.
// They are explicit because the failure boundary is a direct function of
// them: powers of the base underflow to exact zero once the exponent drops
// below e-tiny = MinExponent - Precision + 1, so the boundary for base 10 is
// MinExponent - Precision.
type DecimalParams struct {
	// Precision is the working precision in significant digits.
	Precision uint32
	// MinExponent and MaxExponent bound the adjusted exponent range.
	MinExponent int32
	MaxExponent int32
}

// DefaultDecimalParams reproduces the conventional default decimal context
// (28 digits, exponents to +/-999999), under which the base-10 boundary
// is -1000027.
func DefaultDecimalParams() DecimalParams {
	return DecimalParams{
		Precision:   28,
		MinExponent: -999999,
		MaxExponent: 999999,
	}
}

func (p DecimalParams) validate() error {
	if p.Precision == 0 {
		return fmt.Errorf("decimal: precision must be positive")
	}
	if p.MinExponent >= 0 || p.MaxExponent <= 0 {
		return fmt.Errorf("decimal: exponent range [%d, %d] must straddle zero", p.MinExponent, p.MaxExponent)
	}
	return nil
}

// Decimal evaluates logarithms in arbitrary-precision decimal arithmetic.
// It never errors in this domain: when base^exp underflows to exact zero,
// Eval reports the sentinel negative-infinity result, which is the decimal
// answer for ln(0).
type Decimal struct {
	base int
	ctx  *apd.Context
	// wide carries extra precision and an effectively unbounded exponent
	// range. Intermediate powers must be computed as if the exponent range
	// were unlimited; only the final result underflows against ctx.
	wide *apd.Context
	b    *apd.Decimal
	one  *apd.Decimal
}

// NewDecimal returns a decimal adapter for the given base and context
// parameters.
func NewDecimal(base int, params DecimalParams) (*Decimal, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	ctx := apd.BaseContext.WithPrecision(params.Precision)
	ctx.MinExponent = params.MinExponent
	ctx.MaxExponent = params.MaxExponent

	wide := apd.BaseContext.WithPrecision(params.Precision + 10)
	wide.MinExponent = math.MinInt32 / 2
	wide.MaxExponent = math.MaxInt32 / 2

	return &Decimal{
		base: base,
		ctx:  ctx,
		wide: wide,
		b:    apd.New(int64(base), 0),
		one:  apd.New(1, 0),
	}, nil
}

func (d *Decimal) Name() string { return KindDecimal }

// Eval computes ln(base^exp) under the adapter's decimal context.
func (d *Decimal) Eval(exp int) (Result, error) {
	x := new(apd.Decimal)
	if err := d.pow(x, exp); err != nil {
		return Result{}, fmt.Errorf("decimal: %d^%d: %w", d.base, exp, err)
	}
	if x.IsZero() {
		// The power underflowed past e-tiny. ln(0) is -Infinity, exact.
		return Result{Value: "-Infinity", NegInf: true}, nil
	}
	v := new(apd.Decimal)
	if _, err := d.ctx.Ln(v, x); err != nil {
		return Result{}, fmt.Errorf("decimal: ln(%s): %w", x, err)
	}
	if v.Form == apd.Infinite && v.Negative {
		return Result{Value: v.String(), NegInf: true}, nil
	}
	return Result{Value: v.String()}, nil
}

// pow sets x to base^exp rounded into the probed context. The magnitude
// base^|exp| is built directly in the wide context, never through
// Context.Pow, whose exponential machinery rejects exponents this large.
// The result enters the probed context through a single division (or
// multiplication for non-negative exponents), so underflow is decided by
// the probed context's e-tiny and nothing else.
func (d *Decimal) pow(x *apd.Decimal, exp int) error {
	p := new(apd.Decimal)
	if err := d.powAbs(p, exp); err != nil {
		return err
	}
	if exp < 0 {
		_, err := d.ctx.Quo(x, d.one, p)
		return err
	}
	_, err := d.ctx.Mul(x, p, d.one)
	return err
}

// powAbs sets p to base^|exp| in the wide context. Base 10 is exact by
// construction: 10^n is the decimal 1En. Other bases square-and-multiply,
// rounding to the wide precision at each step so coefficients stay small
// no matter how deep the exponent goes.
func (d *Decimal) powAbs(p *apd.Decimal, exp int) error {
	n := int64(exp)
	if n < 0 {
		n = -n
	}
	if n > math.MaxInt32 {
		return fmt.Errorf("exponent %d out of range", exp)
	}
	if d.base == 10 {
		p.Set(apd.New(1, int32(n)))
		return nil
	}
	p.Set(d.one)
	sq := new(apd.Decimal).Set(d.b)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			if _, err := d.wide.Mul(p, p, sq); err != nil {
				return err
			}
		}
		if n > 1 {
			if _, err := d.wide.Mul(sq, sq, sq); err != nil {
				return err
			}
		}
	}
	return nil
}
