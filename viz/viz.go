// Package viz はgonum/plotを使って関数と反復法の収束の様子を描画します。
//
// roots パッケージの WithObserver と Recorder を組み合わせると、
// 各反復の近似値を曲線上の点や収束グラフとして保存できます。
package viz

import (
	"math"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FunctionPlot は f を [a, b] 上で samples 点に分けて描いたプロットを返す
func FunctionPlot(title string, f func(float64) float64, a, b float64, samples int) (*plot.Plot, error) {
	if f == nil {
		panic("viz: FunctionPlot requires a non-nil function")
	}
	if !(a < b) {
		return nil, errors.NewValidationError("interval", "left end must be less than right end", [2]float64{a, b})
	}
	if samples < 2 {
		return nil, errors.NewValidationError("samples", "at least 2 samples are required", samples)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.X.Min, p.X.Max = a, b
	p.Add(plotter.NewGrid())

	// OX軸
	axis, err := plotter.NewLine(plotter.XYs{{X: a, Y: 0}, {X: b, Y: 0}})
	if err != nil {
		return nil, errors.Wrap(err, "numkit: FunctionPlot")
	}
	axis.LineStyle.Width = vg.Points(0.5)

	fn := plotter.NewFunction(f)
	fn.XMin, fn.XMax = a, b
	fn.Samples = samples
	fn.Width = vg.Points(1.5)

	p.Add(axis, fn)
	p.Legend.Add("f", fn)
	return p, nil
}

// AddIterates は反復の近似値 xs を曲線上の点 (x, f(x)) として重ねる
func AddIterates(p *plot.Plot, f func(float64) float64, xs []float64) error {
	if p == nil || f == nil {
		panic("viz: AddIterates requires a plot and a function")
	}
	if len(xs) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "numkit: AddIterates")
	}

	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i].X = x
		pts[i].Y = f(x)
	}
	if err := errors.CheckNumericalStability("AddIterates", flatten(pts), 0); err != nil {
		return err
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "numkit: AddIterates")
	}
	sc.GlyphStyle.Radius = vg.Points(3)
	p.Add(sc)
	p.Legend.Add("iterates", sc)
	return nil
}

// ConvergencePlot は増分 |x_n − x_{n−1}| を対数目盛で描いたプロットを返す。
// 増分が0の点は対数目盛に載らないので省く
func ConvergencePlot(title string, xs []float64) (*plot.Plot, error) {
	if len(xs) < 2 {
		return nil, errors.NewValidationError("xs", "at least 2 iterates are required", len(xs))
	}

	pts := make(plotter.XYs, 0, len(xs)-1)
	for n := 1; n < len(xs); n++ {
		d := math.Abs(xs[n] - xs[n-1])
		if d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d) {
			pts = append(pts, plotter.XY{X: float64(n), Y: d})
		}
	}
	if len(pts) == 0 {
		return nil, errors.NewValidationError("xs", "no positive finite increments to plot", len(xs))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "|x_n - x_{n-1}|"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, errors.Wrap(err, "numkit: ConvergencePlot")
	}
	p.Add(line, points)
	return p, nil
}

// Save はプロットを path に書き出す。形式は拡張子（.png, .svg, .pdf など）で決まる
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if p == nil {
		panic("viz: Save requires a plot")
	}
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "numkit: save plot to %s", path)
	}
	log.GetLoggerWithName("viz").Debug("plot saved", "path", path)
	return nil
}

func flatten(pts plotter.XYs) []float64 {
	out := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		out = append(out, pt.X, pt.Y)
	}
	return out
}
