package quadrature

import (
	"math"
	"strings"

	"github.com/YuminosukeSato/numkit/pkg/errors"
)

// Mode は区間ごとの寄与 c を合計に加える方法（符号付き面積の扱い）
type Mode int

const (
	// Full は |c| を加える。OX軸の上下を問わない総面積
	Full Mode = iota
	// UpperOX は max(c, 0) を加える。OX軸より上の面積
	UpperOX
	// LowerOX は |min(c, 0)| を加える。OX軸より下の面積
	LowerOX
	// UpperMinusLower は c をそのまま加える。上の面積から下の面積を引いた値
	UpperMinusLower
)

var modeNames = map[Mode]string{
	Full:            "full",
	UpperOX:         "upper_ox",
	LowerOX:         "lower_ox",
	UpperMinusLower: "upper_minus_lower",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode は名前から Mode を返す。大文字小文字は区別しない
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for m, name := range modeNames {
		if key == name || key == strings.ReplaceAll(name, "_", "") {
			return m, nil
		}
	}
	return Full, errors.NewValidationError("mode", "unknown integration mode", s)
}

// apply は寄与 c にモードの規則を適用する
func (m Mode) apply(c float64) float64 {
	switch m {
	case Full:
		return math.Abs(c)
	case UpperOX:
		if c > 0 {
			return c
		}
		return 0
	case LowerOX:
		if c < 0 {
			return -c
		}
		return 0
	default:
		return c
	}
}
