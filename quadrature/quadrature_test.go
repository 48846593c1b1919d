package quadrature

import (
	"context"
	"math"
	"testing"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinOverHalfPeriod(t *testing.T) {
	tests := []struct {
		h        float64
		wantRect float64
		wantTrap float64
	}{
		{h: 1e-6, wantRect: 1.9999999999897489, wantTrap: 1.9999999999893363},
		{h: 1e-5, wantRect: 1.999999999996136, wantTrap: 1.999999999971118},
		{h: 1e-4, wantRect: 2.0000000008052763, wantTrap: 1.9999999940399076},
		{h: 1e-3, wantRect: 2.0000000003679577, wantTrap: 1.9999996577143837},
		{h: 1e-2, wantRect: 2.0000070650799056, wantTrap: 1.9999820650436764},
		{h: 0.1, wantRect: 1.9999683662670709, wantTrap: 1.997468926590932},
		{h: 1, wantRect: 2.075392669312214, wantTrap: 1.8213284156635117},
	}

	for _, tt := range tests {
		if testing.Short() && tt.h < 1e-4 {
			continue
		}
		rect := Rectangle(context.Background(), math.Sin, 0, math.Pi, WithStep(tt.h))
		trap := Trapezoid(context.Background(), math.Sin, 0, math.Pi, WithStep(tt.h))

		require.True(t, rect.IsSuccess(), rect.Reason())
		require.True(t, trap.IsSuccess(), trap.Reason())
		assert.InDelta(t, tt.wantRect, rect.MustValue(), 1e-9, "rectangle h=%g", tt.h)
		assert.InDelta(t, tt.wantTrap, trap.MustValue(), 1e-9, "trapezoid h=%g", tt.h)
	}
}

func TestRectangleDefaultStepIsExact(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the default step")
	}
	r := Rectangle(context.Background(), math.Sin, 0, math.Pi)
	require.True(t, r.IsSuccess(), r.Reason())
	assert.InDelta(t, 2.0, r.MustValue(), 1e-6)
}

func TestSinOverFullPeriodModes(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the default step over 2π")
	}

	tests := []struct {
		mode     Mode
		wantRect float64
		wantTrap float64
	}{
		{mode: Full, wantRect: 3.999999999710259, wantTrap: 3.9999999997097495},
		{mode: UpperOX, wantRect: 1.9999999999897489, wantTrap: 1.9999999999894897},
		{mode: LowerOX, wantRect: 1.999999999720412, wantTrap: 1.9999999997201579},
		{mode: UpperMinusLower, wantRect: 2.6929226829878286e-10, wantTrap: 2.692877832557762e-10},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			rect := Rectangle(context.Background(), math.Sin, 0, 2*math.Pi, WithMode(tt.mode))
			trap := Trapezoid(context.Background(), math.Sin, 0, 2*math.Pi, WithMode(tt.mode))

			require.True(t, rect.IsSuccess(), rect.Reason())
			require.True(t, trap.IsSuccess(), trap.Reason())
			// 相対誤差で比べる。UpperMinusLower は 1e-10 程度の値になる
			assert.InEpsilon(t, tt.wantRect, rect.MustValue(), 1e-6)
			assert.InEpsilon(t, tt.wantTrap, trap.MustValue(), 1e-6)
		})
	}
}

func TestModeApply(t *testing.T) {
	tests := []struct {
		mode Mode
		pos  float64
		neg  float64
	}{
		{mode: Full, pos: 2, neg: 3},
		{mode: UpperOX, pos: 2, neg: 0},
		{mode: LowerOX, pos: 0, neg: 3},
		{mode: UpperMinusLower, pos: 2, neg: -3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.pos, tt.mode.apply(2), tt.mode.String())
		assert.Equal(t, tt.neg, tt.mode.apply(-3), tt.mode.String())
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"full":              Full,
		"Full":              Full,
		"UpperOX":           UpperOX,
		"upper_ox":          UpperOX,
		"lower-ox":          LowerOX,
		"UpperMinusLower":   UpperMinusLower,
		"upper-minus-lower": UpperMinusLower,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("sideways")
	var vErr *errors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestInvalidInterval(t *testing.T) {
	id := func(x float64) float64 { return x }

	for _, ab := range [][2]float64{{1, 0}, {0, 0}, {math.NaN(), 1}} {
		for _, r := range []interface{ IsFailure() bool }{
			Rectangle(context.Background(), id, ab[0], ab[1]),
			Trapezoid(context.Background(), id, ab[0], ab[1], WithMode(UpperMinusLower)),
		} {
			assert.True(t, r.IsFailure(), "a=%v b=%v", ab[0], ab[1])
		}
	}

	r := Rectangle(context.Background(), id, 1, 0)
	var vErr *errors.ValidationError
	require.ErrorAs(t, r.Err(), &vErr)
	assert.Equal(t, "interval", vErr.ParamName)
}

func TestInvalidOptions(t *testing.T) {
	id := func(x float64) float64 { return x }

	for _, h := range []float64{0, MinStep / 2, 1.5, math.NaN()} {
		r := Rectangle(context.Background(), id, 0, 1, WithStep(h))
		var vErr *errors.ValidationError
		require.ErrorAs(t, r.Err(), &vErr, "h=%v", h)
		assert.Equal(t, "h", vErr.ParamName)
	}

	r := Trapezoid(context.Background(), id, 0, 1, WithMode(Mode(-1)))
	var vErr *errors.ValidationError
	require.ErrorAs(t, r.Err(), &vErr)
	assert.Equal(t, "mode", vErr.ParamName)
}

func TestLinearFunction(t *testing.T) {
	// 一次関数に対して中点公式は正確
	line := func(x float64) float64 { return 2*x + 1 }

	rect := Rectangle(context.Background(), line, 0, 1, WithStep(0.25))
	trap := Trapezoid(context.Background(), line, 0, 1, WithStep(0.25))

	assert.InDelta(t, 2.0, rect.MustValue(), 1e-12)
	// 右端 x が b に達した区間 [0.75, 1] は加えない
	assert.InDelta(t, 1.3125, trap.MustValue(), 1e-12)
}

func TestCanceledIntegrationDropsPartialSum(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	f := func(x float64) float64 {
		calls++
		if calls == 100 {
			cancel()
		}
		return 1
	}

	r := Rectangle(ctx, f, 0, 1, WithStep(1e-3))
	require.True(t, r.IsFailure())
	_, ok := r.Value()
	assert.False(t, ok)
	assert.ErrorIs(t, r.Err(), context.Canceled)

	var cErr *errors.CanceledError
	require.ErrorAs(t, r.Err(), &cErr)
	assert.Equal(t, "Rectangle", cErr.Op)
	assert.Equal(t, 100, cErr.Iteration)
}

func TestNonFiniteIntegral(t *testing.T) {
	inf := func(float64) float64 { return math.Inf(1) }
	r := Trapezoid(context.Background(), inf, 0, 1, WithStep(0.5))

	var nErr *errors.NumericalInstabilityError
	assert.ErrorAs(t, r.Err(), &nErr)
}

func TestIntegrationLogging(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)

	r := Rectangle(context.Background(), math.Sin, 0, math.Pi, WithStep(0.5), WithLogger(logger), WithMode(UpperOX))
	require.True(t, r.IsSuccess())

	assert.True(t, logger.ContainsMessage("integral computed"))
	assert.True(t, logger.ContainsField(log.MethodKey, "Rectangle"))
	assert.True(t, logger.ContainsField(log.ModeKey, "upper_ox"))
	assert.True(t, logger.ContainsField(log.SegmentsKey, 6.0))
}

func TestNilFunctionPanics(t *testing.T) {
	assert.Panics(t, func() { Rectangle(context.Background(), nil, 0, 1) })
	assert.Panics(t, func() { Trapezoid(context.Background(), nil, 0, 1) })
}

func TestCallbackPanicBecomesFailure(t *testing.T) {
	boom := func(x float64) float64 {
		if x > 0.5 {
			panic("outside the domain")
		}
		return x
	}

	for _, r := range []interface{ Err() error }{
		Rectangle(context.Background(), boom, 0, 1, WithStep(0.1)),
		Trapezoid(context.Background(), boom, 0, 1, WithStep(0.1)),
		Trapezoid(context.Background(), boom, 0.75, 1, WithStep(0.1)),
	} {
		var pErr *errors.PanicError
		require.ErrorAs(t, r.Err(), &pErr)
		assert.Equal(t, "outside the domain", pErr.PanicValue)
	}
}
