package linalg

import (
	"fmt"

	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector は次元が固定された実数ベクトル
type Vector struct {
	data *mat.VecDense
}

// NewVector は値をコピーしてベクトルを作成する。次元は1以上
func NewVector(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, errors.NewValidationError("values", "vector dimension must be at least 1", 0)
	}
	buf := make([]float64, len(values))
	copy(buf, values)
	return &Vector{data: mat.NewVecDense(len(buf), buf)}, nil
}

// ZeroVector はn次元のゼロベクトルを作成する
func ZeroVector(n int) (*Vector, error) {
	if n < 1 {
		return nil, errors.NewValidationError("n", "vector dimension must be at least 1", n)
	}
	return &Vector{data: mat.NewVecDense(n, nil)}, nil
}

// Dim はベクトルの次元を返す
func (v *Vector) Dim() int { return v.data.Len() }

// At はi番目の成分を返す。範囲外ならパニックする
func (v *Vector) At(i int) float64 { return v.data.AtVec(i) }

// Set はi番目の成分を設定する
func (v *Vector) Set(i int, x float64) { v.data.SetVec(i, x) }

// Clone は独立したコピーを返す
func (v *Vector) Clone() *Vector {
	return &Vector{data: mat.VecDenseCopyOf(v.data)}
}

// Values は成分のコピーを返す
func (v *Vector) Values() []float64 {
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = v.data.AtVec(i)
	}
	return out
}

// Sub は v − other を返す
func (v *Vector) Sub(other *Vector) result.Result[*Vector] {
	if v.Dim() != other.Dim() {
		return result.FromError[*Vector](errors.NewDimensionError("Vector.Sub", v.Dim(), other.Dim(), 0))
	}
	out := mat.NewVecDense(v.Dim(), nil)
	out.SubVec(v.data, other.data)
	return result.Success(&Vector{data: out})
}

// EqualApprox は次元が等しく、各成分の差がtol以内かを判定する
func (v *Vector) EqualApprox(other *Vector, tol float64) bool {
	if v.Dim() != other.Dim() {
		return false
	}
	return floats.EqualApprox(v.Values(), other.Values(), tol)
}

func (v *Vector) String() string {
	return fmt.Sprint(v.Values())
}

// RawVector はgonumのベクトルとしてコピーを返す
func (v *Vector) RawVector() *mat.VecDense {
	return mat.VecDenseCopyOf(v.data)
}

// Vector2 は2次元ベクトルに名前付きアクセサを与えるラッパー。
// 元の *Vector と記憶領域を共有する
type Vector2 struct {
	v *Vector
}

// NewVector2 は (x, y) を作成する
func NewVector2(x, y float64) Vector2 {
	return Vector2{v: &Vector{data: mat.NewVecDense(2, []float64{x, y})}}
}

// AsVector2 は2次元の *Vector を Vector2 として見る
func AsVector2(v *Vector) (Vector2, error) {
	if v.Dim() != 2 {
		return Vector2{}, errors.NewDimensionError("AsVector2", 2, v.Dim(), 0)
	}
	return Vector2{v: v}, nil
}

func (p Vector2) X() float64      { return p.v.At(0) }
func (p Vector2) Y() float64      { return p.v.At(1) }
func (p Vector2) Vector() *Vector { return p.v }

// Vector3 は3次元ベクトルに名前付きアクセサを与えるラッパー
type Vector3 struct {
	v *Vector
}

// NewVector3 は (x, y, z) を作成する
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{v: &Vector{data: mat.NewVecDense(3, []float64{x, y, z})}}
}

// AsVector3 は3次元の *Vector を Vector3 として見る
func AsVector3(v *Vector) (Vector3, error) {
	if v.Dim() != 3 {
		return Vector3{}, errors.NewDimensionError("AsVector3", 3, v.Dim(), 0)
	}
	return Vector3{v: v}, nil
}

func (p Vector3) X() float64      { return p.v.At(0) }
func (p Vector3) Y() float64      { return p.v.At(1) }
func (p Vector3) Z() float64      { return p.v.At(2) }
func (p Vector3) Vector() *Vector { return p.v }
