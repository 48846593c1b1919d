// Package metrics はベクトル同士の誤差指標を提供します。
// 連立一次方程式の残差 A·x − b の評価に使われます。
package metrics

import (
	"math"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// checkPair は2つのベクトルが空でなく、同じ長さであることを確認する
func checkPair(op string, exact, approx *mat.VecDense) (int, error) {
	n := exact.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if approx.Len() != n {
		return 0, errors.NewDimensionError(op, n, approx.Len(), 0)
	}
	return n, nil
}

// diff は exact − approx を新しいスライスとして返す
func diff(exact, approx *mat.VecDense, n int) []float64 {
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = exact.AtVec(i) - approx.AtVec(i)
	}
	return d
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(exact, approx *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", exact, approx)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(exact - approx)²
	d := diff(exact, approx, n)
	return floats.Dot(d, d) / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(exact, approx *mat.VecDense) (float64, error) {
	mse, err := MSE(exact, approx)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(exact, approx *mat.VecDense) (float64, error) {
	n, err := checkPair("MAE", exact, approx)
	if err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|exact - approx|
	d := diff(exact, approx, n)
	return floats.Norm(d, 1) / float64(n), nil
}

// MaxError は成分ごとの絶対誤差の最大値（無限大ノルム）を計算する
func MaxError(exact, approx *mat.VecDense) (float64, error) {
	n, err := checkPair("MaxError", exact, approx)
	if err != nil {
		return 0, err
	}

	d := diff(exact, approx, n)
	return floats.Norm(d, math.Inf(1)), nil
}
