package viz

import "sync"

// Recorder は反復の近似値を順に記録する。
// Observe は roots.WithObserver にそのまま渡せる
type Recorder struct {
	mu sync.Mutex
	xs []float64
}

// Observe は反復 iteration の近似値 x を記録する
func (r *Recorder) Observe(_ int, x float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.xs = append(r.xs, x)
}

// Iterates は記録した近似値のコピーを返す
func (r *Recorder) Iterates() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.xs...)
}

// Reset は記録を消去する
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.xs = nil
}
