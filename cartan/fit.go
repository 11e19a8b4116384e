// SPDX-License-Identifier: MIT

package cartan

import (
	"log/slog"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/internal/rng"
	"github.com/katalvlaran/weylchamber/weyl"
)

const (
	// generatorParams is the dimension of so(4).
	generatorParams = 6

	// fitParams is the phase plus one generator per side.
	fitParams = 1 + 2*generatorParams

	// jitterScale is the standard deviation of the generator jitter applied
	// to restarts after the first.
	jitterScale = 0.25
)

// Fit is a gate of a prescribed local-equivalence class close to a target:
// Gate = Phase·K1·Canonical(c)·K2 with K1, K2 local.
type Fit struct {
	Gate     gate.Gate
	K1       gate.Gate
	K2       gate.Gate
	Phase    complex128
	Residual float64 // ‖u − Gate‖_F
}

// ClosestLocallyEquivalent finds local gates K1, K2 and a global phase that
// bring the class of c as close as possible to u in Frobenius norm.
//
// Implementation:
//   - Stage 1: Cartan-factor u in the magic basis (u = ph·O1·F·O2).
//   - Stage 2: align the eigenphases of Canonical(c) to F over all 24
//     permutations and 8 even sign patterns; each alignment gives starting
//     factors and a closed-form phase.
//   - Stage 3: refine the best alignments with BFGS (gonum optimize) over
//     the phase and one so(4) generator per side, exponentiated with
//     mat.Dense.Exp; restarts after the first are jittered from a seeded
//     stream.
//
// Behavior highlights:
//   - If u is in the class of c the alignment is already exact; no
//     refinement runs.
//   - The search stops as soon as the residual is within the limit.
//   - Deterministic: the same options always yield the same Fit.
//
// Errors:
//   - gate.ErrInvalidGate (wrapped) if u is not unitary.
//   - weyl.ErrOutOfChamber (wrapped) for coordinates outside the chamber
//     (unless weyl.WithFolding is forwarded).
//   - ErrDecompositionFailed (wrapped) from the factorization of u.
func ClosestLocallyEquivalent(u gate.Gate, c weyl.Coordinates, opts ...Option) (Fit, error) {
	o := gatherOptions(opts...)
	a, err := weyl.CanonicalGate(c, o.weylOpts...)
	if err != nil {
		return Fit{}, cartanErrorf(opClosest, err)
	}
	if err = gate.ValidateUnitary(u, gate.WithTolerance(o.unitarityTol)); err != nil {
		return Fit{}, cartanErrorf(opClosest, err)
	}
	mf, err := factorize(u)
	if err != nil {
		return Fit{}, cartanErrorf(opClosest, err)
	}

	var dc [gate.Dim]complex128
	am := gate.ToMagic(a)
	for k := 0; k < gate.Dim; k++ {
		dc[k] = am[k][k]
	}
	var (
		cands = alignments(mf.f, dc)
		base  = rng.FromSeed(o.seed)
		ub    = gate.ToMagic(u)
		best  fitState
	)
	for r := 0; r < o.restarts; r++ {
		p := newFitProblem(ub, dc, mf, cands[r%len(cands)])
		x0 := make([]float64, fitParams)
		x0[0] = cmplx.Phase(mf.phase) + p.start.alpha
		if r > 0 {
			jitter := rng.Derive(base, uint64(r))
			for i := 1; i < fitParams; i++ {
				x0[i] = jitterScale * jitter.NormFloat64()
			}
		}
		st := p.refine(x0, &o)
		o.logger.Debug("fit",
			slog.Int("restart", r),
			slog.Float64("alignment", p.start.residual),
			slog.Float64("residual", st.residual),
		)
		if r == 0 || st.residual < best.residual {
			best = st
		}
		if best.residual <= o.limit {
			break
		}
	}

	var (
		k1    = gate.FromMagic(complexOfDense(best.left))
		k2    = gate.FromMagic(complexOfDense(best.right))
		phase = cmplx.Rect(1, best.phase)
		fit   = k1.Mul(a).Mul(k2).Scale(phase)
	)

	return Fit{
		Gate:     fit,
		K1:       k1,
		K2:       k2,
		Phase:    phase,
		Residual: u.Sub(fit).Norm(),
	}, nil
}

// fitState is one candidate fit in the magic basis:
// e^{i·phase}·left·diag(dc)·right.
type fitState struct {
	phase    float64
	left     *mat.Dense
	right    *mat.Dense
	residual float64
}

// fitProblem holds the fixed data of one refinement: the target ub in the
// magic basis, the canonical eigenphases dc and the aligned starting
// factors x0·e^{G₁}·diag(dc)·e^{G₂}·y0.
type fitProblem struct {
	ub    gate.Gate
	dc    [gate.Dim]complex128
	x0    *mat.Dense
	y0    *mat.Dense
	start alignment
}

// newFitProblem builds the starting factors of alignment al:
// X = O1·S·P·J and Y = J·Pᵀ·O2 with P[k][perm[k]] = 1, S = diag(signs) and
// J = diag(−1, 1, 1, 1) for odd perm (identity otherwise), so that
// X·diag(dc)·Y = O1·diag(t)·O2 and det X = det Y = 1.
func newFitProblem(ub gate.Gate, dc [gate.Dim]complex128, mf magicFactors, al alignment) *fitProblem {
	var perm, sgn, j [gate.Dim][gate.Dim]float64
	for k := 0; k < gate.Dim; k++ {
		perm[k][al.perm[k]] = 1
		sgn[k][k] = al.signs[k]
		j[k][k] = 1
	}
	if al.odd {
		j[0][0] = -1
	}
	var (
		pd = denseOf(perm)
		jd = denseOf(j)
		x  mat.Dense
		y  mat.Dense
	)
	x.Product(realDense(mf.o1), denseOf(sgn), pd, jd)
	y.Product(jd, pd.T(), realDense(mf.o2))

	return &fitProblem{ub: ub, dc: dc, x0: &x, y0: &y, start: al}
}

// state evaluates the factors and residual at x = (phase, G₁, G₂).
func (p *fitProblem) state(x []float64) fitState {
	var l, r mat.Dense
	l.Mul(p.x0, expGenerator(x[1:1+generatorParams]))
	r.Mul(expGenerator(x[1+generatorParams:]), p.y0)

	var (
		rot = cmplx.Rect(1, x[0])
		sum float64
	)
	for i := 0; i < gate.Dim; i++ {
		for jj := 0; jj < gate.Dim; jj++ {
			var m complex128
			for k := 0; k < gate.Dim; k++ {
				m += complex(l.At(i, k)*r.At(k, jj), 0) * p.dc[k]
			}
			d := p.ub[i][jj] - rot*m
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}

	return fitState{phase: x[0], left: &l, right: &r, residual: math.Sqrt(sum)}
}

// refine minimizes the squared residual from x0 and returns the better of
// the start and the optimizer's result.
func (p *fitProblem) refine(x0 []float64, o *Options) fitState {
	start := p.state(x0)
	if start.residual <= o.limit {
		return start
	}
	var (
		f = func(x []float64) float64 {
			r := p.state(x).residual
			return r * r
		}
		problem = optimize.Problem{
			Func: f,
			Grad: func(grad, x []float64) {
				fd.Gradient(grad, f, x, &fd.Settings{Formula: fd.Central})
			},
		}
		settings = &optimize.Settings{MajorIterations: o.maxIter}
	)
	res, err := optimize.Minimize(problem, x0, settings, &optimize.BFGS{})
	if err != nil {
		o.logger.Debug("refinement stopped", slog.String("error", err.Error()))
	}
	if res == nil || len(res.X) != fitParams {
		return start
	}
	if st := p.state(res.X); st.residual < start.residual {
		return st
	}

	return start
}

// expGenerator returns exp(G) for the antisymmetric G with upper-triangle
// entries g (row-major), an element of SO(4).
func expGenerator(g []float64) *mat.Dense {
	a := mat.NewDense(gate.Dim, gate.Dim, nil)
	n := 0
	for i := 0; i < gate.Dim; i++ {
		for j := i + 1; j < gate.Dim; j++ {
			a.Set(i, j, g[n])
			a.Set(j, i, -g[n])
			n++
		}
	}
	var e mat.Dense
	e.Exp(a)

	return &e
}
