package piecewise

import (
	"fmt"
	"sync"

	"github.com/pkallberg/pwlin/expr"
	"github.com/pkallberg/pwlin/pointset"
	"github.com/pkallberg/pwlin/triangulate"
)

// Func is a piecewise-linear approximation of a scalar function over a
// D-dimensional domain. Zero value is unbuilt; populate it exactly once
// with Build (or use New). Vertices, simplices and pieces are immutable
// after construction; the symbolic maps grow under the mutex.
type Func struct {
	built     bool
	dim       int
	points    *pointset.Set
	simplices []triangulate.Simplex
	pieces    []Piece
	lo, hi    []float64
	opts      Options

	mu         sync.Mutex
	nodes      []*expr.Call
	registered map[*expr.ArgTuple]*expr.Call
	surrogates map[*expr.Call]*expr.Var
}

// New builds a piecewise-linear function from one of the three supported
// configurations. See Config for mode selection.
func New(cfg Config) (*Func, error) {
	f := &Func{}
	if err := f.Build(cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Build populates an unbuilt instance. A second call on the same instance
// fails with ErrRebuild regardless of its configuration.
func (f *Func) Build(cfg Config) error {
	if f.built {
		return fmt.Errorf("Build: %w", ErrRebuild)
	}

	opts := DefaultOptions()
	if cfg.Options != nil {
		opts = *cfg.Options
		if opts.ContainTol < 0 || opts.HullEps <= 0 {
			return fmt.Errorf("Build: ContainTol=%g, HullEps=%g: %w",
				opts.ContainTol, opts.HullEps, ErrConfiguration)
		}
	}
	f.opts = opts

	// Exactly one of the three modes, keyed by which inputs are present
	// (mirrored as a presence tuple so rejection can name the offender).
	hasFn := cfg.Function != nil
	hasPts := len(cfg.Points) > 0 || len(cfg.Breakpoints) > 0
	hasSimplices := len(cfg.Simplices) > 0
	hasPieces := len(cfg.Pieces) > 0
	if len(cfg.Points) > 0 && len(cfg.Breakpoints) > 0 {
		return fmt.Errorf("Build: both Points and Breakpoints supplied: %w", ErrConfiguration)
	}

	var err error
	switch {
	case hasFn && hasPts && !hasSimplices && !hasPieces:
		err = f.buildFromPoints(cfg)
	case hasFn && !hasPts && hasSimplices && !hasPieces:
		err = f.buildFromSimplices(cfg)
	case !hasFn && !hasPts && hasSimplices && hasPieces:
		err = f.buildFromPieces(cfg)
	default:
		return fmt.Errorf("Build: function=%t points=%t simplices=%t pieces=%t "+
			"matches no supported mode: %w", hasFn, hasPts, hasSimplices, hasPieces,
			ErrConfiguration)
	}
	if err != nil {
		// No partial state survives a failed construction.
		*f = Func{}
		return err
	}

	f.computeBounds()
	f.registered = make(map[*expr.ArgTuple]*expr.Call)
	f.surrogates = make(map[*expr.Call]*expr.Var)
	f.built = true
	return nil
}

// buildFromPoints triangulates a breakpoint cloud and fits every simplex
// (mode 1). 1-D clouds skip triangulation in favor of sorted segments.
func (f *Func) buildFromPoints(cfg Config) error {
	xs := cfg.Breakpoints
	if xs == nil && len(cfg.Points[0]) == 1 {
		// Scalars supplied as 1-tuples take the univariate path too.
		xs = make([]float64, len(cfg.Points))
		for i, p := range cfg.Points {
			if len(p) != 1 {
				return fmt.Errorf("Build: point %d has %d coordinates, want 1: %w",
					i, len(p), ErrDimensionMismatch)
			}
			xs[i] = p[0]
		}
	}

	if xs != nil {
		segs, sorted, err := triangulate.Segments(xs)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		set, err := pointset.New(1)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		for _, x := range sorted {
			if _, err := set.Intern(pointset.Point{x}); err != nil {
				return fmt.Errorf("Build: %w", err)
			}
		}
		f.dim, f.points, f.simplices = 1, set, segs
		return f.fitAll(cfg.Function)
	}

	dim := len(cfg.Points[0])
	set, err := pointset.New(dim)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	for i, p := range cfg.Points {
		if _, err := set.Intern(p); err != nil {
			return fmt.Errorf("Build: point %d: %w", i, err)
		}
	}
	simplices, err := triangulate.Delaunay(set.Points(), &triangulate.Options{Eps: f.opts.HullEps})
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	f.dim, f.points, f.simplices = dim, set, simplices
	return f.fitAll(cfg.Function)
}

// buildFromSimplices interns explicit simplex vertices and fits every
// simplex (mode 2).
func (f *Func) buildFromSimplices(cfg Config) error {
	if err := f.internSimplices(cfg.Simplices); err != nil {
		return err
	}
	return f.fitAll(cfg.Function)
}

// buildFromPieces interns explicit simplices and adopts the supplied
// pieces verbatim (mode 3).
func (f *Func) buildFromPieces(cfg Config) error {
	if len(cfg.Pieces) != len(cfg.Simplices) {
		return fmt.Errorf("Build: %d pieces for %d simplices: %w",
			len(cfg.Pieces), len(cfg.Simplices), ErrConfiguration)
	}
	if err := f.internSimplices(cfg.Simplices); err != nil {
		return err
	}
	f.pieces = make([]Piece, 0, len(cfg.Pieces))
	for i, p := range cfg.Pieces {
		if len(p.Slopes) != f.dim {
			return fmt.Errorf("Build: piece %d has %d slopes, want %d: %w",
				i, len(p.Slopes), f.dim, ErrDimensionMismatch)
		}
		f.pieces = append(f.pieces, p.Clone())
	}
	return nil
}

// internSimplices folds explicit vertex lists through the point registry,
// producing index simplices. 1-D segment endpoints are stored in
// ascending order so the interval containment test can rely on it.
func (f *Func) internSimplices(simplices [][]pointset.Point) error {
	dim := len(simplices[0]) - 1
	if dim < 1 {
		return fmt.Errorf("Build: simplex 0 has %d vertices: %w", len(simplices[0]), ErrConfiguration)
	}
	set, err := pointset.New(dim)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	out := make([]triangulate.Simplex, 0, len(simplices))
	for si, verts := range simplices {
		if len(verts) != dim+1 {
			return fmt.Errorf("Build: simplex %d has %d vertices, want %d: %w",
				si, len(verts), dim+1, ErrConfiguration)
		}
		for vi, v := range verts {
			if len(v) != dim {
				return fmt.Errorf("Build: simplex %d vertex %d has %d coordinates, want %d: %w",
					si, vi, len(v), dim, ErrDimensionMismatch)
			}
		}
		if dim == 1 && verts[0][0] > verts[1][0] {
			verts = []pointset.Point{verts[1], verts[0]}
		}
		s := make(triangulate.Simplex, 0, dim+1)
		for vi, v := range verts {
			idx, err := set.Intern(v)
			if err != nil {
				return fmt.Errorf("Build: simplex %d vertex %d: %w", si, vi, err)
			}
			s = append(s, idx)
		}
		out = append(out, s)
	}
	f.dim, f.points, f.simplices = dim, set, out
	return nil
}

// computeBounds caches the axis-aligned bounding box of all vertices.
func (f *Func) computeBounds() {
	f.lo = make([]float64, f.dim)
	f.hi = make([]float64, f.dim)
	for i := 0; i < f.points.Len(); i++ {
		p, _ := f.points.At(i)
		for j, v := range p {
			if i == 0 || v < f.lo[j] {
				f.lo[j] = v
			}
			if i == 0 || v > f.hi[j] {
				f.hi[j] = v
			}
		}
	}
}

// Dim reports the domain dimension D.
func (f *Func) Dim() int { return f.dim }

// Len reports the number of simplex/piece pairs.
func (f *Func) Len() int { return len(f.pieces) }

// Simplex returns the i-th simplex as vertex indices.
func (f *Func) Simplex(i int) (triangulate.Simplex, error) {
	if i < 0 || i >= len(f.simplices) {
		return nil, fmt.Errorf("Simplex(%d): have %d: %w", i, len(f.simplices), ErrIndexOutOfRange)
	}
	return f.simplices[i].Clone(), nil
}

// Piece returns the affine piece fitted (or supplied) for the i-th simplex.
func (f *Func) Piece(i int) (Piece, error) {
	if i < 0 || i >= len(f.pieces) {
		return Piece{}, fmt.Errorf("Piece(%d): have %d: %w", i, len(f.pieces), ErrIndexOutOfRange)
	}
	return f.pieces[i].Clone(), nil
}

// Vertex returns an interned vertex by index.
func (f *Func) Vertex(i int) (pointset.Point, error) {
	if f.points == nil {
		return nil, fmt.Errorf("Vertex: function not built: %w", ErrConfiguration)
	}
	p, err := f.points.At(i)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Bounds returns the axis-aligned bounding box of the approximated
// domain. Note the domain is the union of simplices, which may be
// strictly smaller than this box.
func (f *Func) Bounds() (lo, hi []float64) {
	return append([]float64(nil), f.lo...), append([]float64(nil), f.hi...)
}
