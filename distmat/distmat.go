package distmat

import (
	"errors"
	"math"
)

// Sentinel errors returned by Matrix constructors and accessors.
var (
	// ErrNonSquare indicates that the input rows do not form a square table.
	ErrNonSquare = errors.New("distmat: matrix must be square")

	// ErrDimensionMismatch indicates an empty input or a dimension too small
	// for a non-trivial round trip (N must be at least 2).
	ErrDimensionMismatch = errors.New("distmat: dimension must be at least 2")

	// ErrBadValue indicates a NaN or infinite entry.
	ErrBadValue = errors.New("distmat: entries must be finite")

	// ErrNegativeWeight indicates a negative travel cost.
	ErrNegativeWeight = errors.New("distmat: negative travel cost")

	// ErrNonZeroDiagonal indicates a non-zero self-distance d(i,i).
	ErrNonZeroDiagonal = errors.New("distmat: diagonal must be zero")

	// ErrIndexOutOfBounds indicates a row or column index outside [0..N-1].
	ErrIndexOutOfBounds = errors.New("distmat: index out of bounds")
)

// diagTol is the structural tolerance for the zero-diagonal check.
// It is intentionally tighter than any realistic travel cost.
const diagTol = 1e-12

// roundScale controls entry stabilization precision (1e-9). Storing rounded
// entries keeps cost sums bit-identical across platforms, which downstream
// optimizers rely on for exact-equality convergence checks.
const roundScale = 1e9

// Matrix is an immutable N×N table of non-negative travel costs in row-major
// flat storage. Construct one with New or FromCoordinates; a zero Matrix is
// not usable.
type Matrix struct {
	n    int       // matrix order (number of locations)
	data []float64 // flat backing storage, length n*n, row-major
}

// New builds a Matrix from row slices, copying and validating every entry.
//
// Stage 1 (Shape): len(rows) == len(rows[i]) == N, N ≥ 2.
// Stage 2 (Values): finite, non-negative, zero diagonal within diagTol.
// Stage 3 (Finalize): copy into flat storage, rounded to 1e-9.
//
// The input slices are not retained; mutating them later does not affect
// the returned Matrix.
//
// Complexity: O(N²) time and space.
func New(rows [][]float64) (*Matrix, error) {
	var n = len(rows)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	if n == 1 {
		// A single location has no non-trivial round trip.
		return nil, ErrDimensionMismatch
	}

	var (
		i, j int
		v    float64
		abs  float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}

	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrBadValue
			}
			if v < 0 {
				return nil, ErrNegativeWeight
			}
			if i == j {
				abs = v
				if abs < 0 {
					abs = -abs
				}
				if abs > diagTol {
					return nil, ErrNonZeroDiagonal
				}
				// Store an exact zero on the diagonal.
				v = 0
			}
			data[i*n+j] = round1e9(v)
		}
	}

	return &Matrix{n: n, data: data}, nil
}

// FromCoordinates builds a symmetric Euclidean Matrix from 2-D points:
// entry (i,j) is the straight-line distance between pts[i] and pts[j].
// Useful for tests and planar instances; travel-time or road-network
// matrices come from external providers and enter through New.
//
// Complexity: O(N²) time and space.
func FromCoordinates(pts [][2]float64) (*Matrix, error) {
	var n = len(pts)
	if n < 2 {
		return nil, ErrDimensionMismatch
	}

	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		if math.IsNaN(pts[i][0]) || math.IsInf(pts[i][0], 0) ||
			math.IsNaN(pts[i][1]) || math.IsInf(pts[i][1], 0) {
			return nil, ErrBadValue
		}
	}

	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = round1e9(math.Sqrt(dx*dx + dy*dy))
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &Matrix{n: n, data: data}, nil
}

// Dim returns the matrix order N (the number of locations).
//
// Complexity: O(1).
func (m *Matrix) Dim() int {
	return m.n
}

// At returns entry (i, j). Indices must be in [0..N-1]; this is the hot-path
// accessor and performs no bounds checking beyond the slice's own. Use
// AtChecked when indices come from untrusted input.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// AtChecked returns entry (i, j) with explicit bounds validation.
//
// Complexity: O(1).
func (m *Matrix) AtChecked(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}
	return m.data[i*m.n+j], nil
}

// Flatten returns a fresh row-major copy of the backing storage, suitable for
// solver hot loops (index with [u*N+v]). The Matrix itself stays immutable.
//
// Complexity: O(N²) time and space.
func (m *Matrix) Flatten() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns an independent deep copy.
//
// Complexity: O(N²) time and space.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{n: m.n, data: m.Flatten()}
}

// Symmetric reports whether d(i,j) == d(j,i) for all pairs. Entries are
// compared exactly; construction already stabilized them to 1e-9.
//
// Complexity: O(N²) time.
func (m *Matrix) Symmetric() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}
	return true
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
