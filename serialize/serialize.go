// Package serialize: YAML encoding/decoding of generators and fit state.

package serialize

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/christinahedges/lamatrix/astro"
	"github.com/christinahedges/lamatrix/combined"
	"github.com/christinahedges/lamatrix/gauss"
	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
	"github.com/christinahedges/lamatrix/simple"
	"github.com/christinahedges/lamatrix/spline"
)

var (
	// ErrUnknownKind indicates a generator type this package cannot persist,
	// or a document kind it cannot reconstruct.
	ErrUnknownKind = errors.New("serialize: unknown generator kind")

	// ErrBadDocument indicates a structurally invalid document (e.g. a stack
	// without components, or a covariance that is not square).
	ErrBadDocument = errors.New("serialize: malformed document")
)

// Document kinds. Stable on-disk identifiers; never rename.
const (
	kindConstant   = "constant"
	kindPolynomial = "polynomial"
	kindSinusoid   = "sinusoid"
	kindGaussian   = "gaussian"
	kindDGaussian  = "dgaussian"
	kindGaussian2D = "gaussian2d"
	kindBSpline    = "bspline"
	kindFlare      = "flare"
	kindRamp       = "ramp"
	kindStack      = "stack"
	kindCrossterm  = "crossterm"
)

// document is the on-disk shape of one generator (possibly nested).
type document struct {
	Kind       string     `yaml:"kind"`
	Args       []string   `yaml:"args,omitempty"`
	Params     params     `yaml:"parameters,omitempty"`
	Prior      *priorDoc  `yaml:"prior,omitempty"`
	Components []document `yaml:"components,omitempty"`
	Fit        *fitDoc    `yaml:"fit,omitempty"`
}

// params is the union of construction parameters across kinds; unused fields
// are omitted from the output.
type params struct {
	Degree    int       `yaml:"degree,omitempty"`
	Harmonics int       `yaml:"harmonics,omitempty"`
	Intercept *bool     `yaml:"intercept,omitempty"`
	Mean      float64   `yaml:"mean,omitempty"`
	Stddev    float64   `yaml:"stddev,omitempty"`
	MeanX     float64   `yaml:"mean_x,omitempty"`
	MeanY     float64   `yaml:"mean_y,omitempty"`
	StddevX   float64   `yaml:"stddev_x,omitempty"`
	StddevY   float64   `yaml:"stddev_y,omitempty"`
	Knots     []float64 `yaml:"knots,omitempty"`
	Peak      float64   `yaml:"peak,omitempty"`
	Rise      float64   `yaml:"rise,omitempty"`
	Decay     float64   `yaml:"decay,omitempty"`
	Tau       float64   `yaml:"tau,omitempty"`
}

type priorDoc struct {
	Mu    []float64 `yaml:"mu"`
	Sigma []float64 `yaml:"sigma"`
}

type fitDoc struct {
	Mu    []float64   `yaml:"mu"`
	Sigma []float64   `yaml:"sigma"`
	Cov   [][]float64 `yaml:"cov"`
}

// Save writes the generator (and optional fit result) as one YAML document.
//
// Errors: ErrUnknownKind for generator types outside the built-in set;
// yaml encoding errors are returned wrapped.
func Save(w io.Writer, g generator.Generator, res *generator.FitResult) error {
	doc, err := encode(g)
	if err != nil {
		return err
	}
	if res != nil {
		fd := &fitDoc{Mu: res.Mu, Sigma: res.Sigma}
		if res.Cov != nil {
			fd.Cov = make([][]float64, res.Cov.Rows())
			for i := range fd.Cov {
				row, rerr := res.Cov.Row(i)
				if rerr != nil {
					return fmt.Errorf("serialize: %w", rerr)
				}
				fd.Cov[i] = row
			}
		}
		doc.Fit = fd
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("serialize: encode: %w", err)
	}

	return enc.Close()
}

// Load reads one YAML document and reconstructs the generator and, when
// present, its fit result.
//
// Errors: ErrUnknownKind, ErrBadDocument, constructor validation errors,
// wrapped yaml decoding errors.
func Load(r io.Reader) (generator.Generator, *generator.FitResult, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("serialize: decode: %w", err)
	}

	g, err := decode(doc)
	if err != nil {
		return nil, nil, err
	}

	var res *generator.FitResult
	if doc.Fit != nil {
		res = &generator.FitResult{
			Mu:    doc.Fit.Mu,
			Sigma: doc.Fit.Sigma,
			Width: g.Width(),
		}
		if len(res.Mu) != g.Width() || len(res.Sigma) != g.Width() {
			return nil, nil, ErrBadDocument
		}
		if doc.Fit.Cov != nil {
			cov, cerr := linalg.NewDenseFromRows(doc.Fit.Cov)
			if cerr != nil || cov.Rows() != g.Width() || cov.Cols() != g.Width() {
				return nil, nil, ErrBadDocument
			}
			res.Cov = cov
		}
	}

	return g, res, nil
}

// encode maps a concrete generator onto its document, recursing into
// composed generators.
func encode(g generator.Generator) (document, error) {
	prior := g.Prior()
	doc := document{Prior: &priorDoc{Mu: prior.Mu, Sigma: prior.Sigma}}

	switch t := g.(type) {
	case *simple.ConstantGenerator:
		doc.Kind = kindConstant
		doc.Args = []string{t.Arg()}
	case *simple.PolynomialGenerator:
		doc.Kind = kindPolynomial
		doc.Args = []string{t.Arg()}
		intercept := t.HasIntercept()
		doc.Params = params{Degree: t.Degree(), Intercept: &intercept}
	case *simple.SinusoidGenerator:
		doc.Kind = kindSinusoid
		doc.Args = []string{t.Arg()}
		intercept := t.HasIntercept()
		doc.Params = params{Harmonics: t.Harmonics(), Intercept: &intercept}
	case *gauss.GaussianGenerator:
		doc.Kind = kindGaussian
		doc.Args = []string{t.Arg()}
		doc.Params = params{Mean: t.Mean(), Stddev: t.Stddev()}
	case *gauss.DGaussianGenerator:
		doc.Kind = kindDGaussian
		doc.Args = []string{t.Arg()}
		doc.Params = params{Mean: t.Mean(), Stddev: t.Stddev()}
	case *gauss.Gaussian2DGenerator:
		doc.Kind = kindGaussian2D
		ax, ay := t.Args()
		doc.Args = []string{ax, ay}
		mx, my := t.Means()
		sx, sy := t.Stddevs()
		doc.Params = params{MeanX: mx, MeanY: my, StddevX: sx, StddevY: sy}
	case *spline.BSplineGenerator:
		doc.Kind = kindBSpline
		doc.Args = []string{t.Arg()}
		doc.Params = params{Knots: t.Knots(), Degree: t.Degree()}
	case *astro.FlareGenerator:
		doc.Kind = kindFlare
		doc.Args = []string{t.Arg()}
		doc.Params = params{Peak: t.Peak(), Rise: t.Rise(), Decay: t.Decay()}
	case *astro.RampGenerator:
		doc.Kind = kindRamp
		doc.Args = []string{t.Arg()}
		doc.Params = params{Tau: t.Tau()}
	case *combined.StackedGenerator:
		doc.Kind = kindStack
		doc.Prior = nil // derived from the components
		for _, sub := range t.Generators() {
			sd, err := encode(sub)
			if err != nil {
				return document{}, err
			}
			doc.Components = append(doc.Components, sd)
		}
	case *combined.CrosstermGenerator:
		doc.Kind = kindCrossterm
		a, b := t.Generators()
		for _, sub := range []generator.Generator{a, b} {
			sd, err := encode(sub)
			if err != nil {
				return document{}, err
			}
			doc.Components = append(doc.Components, sd)
		}
	default:
		return document{}, ErrUnknownKind
	}

	return doc, nil
}

// decode reconstructs a generator from its document through the public
// constructors, so all construction-time validation applies.
func decode(doc document) (generator.Generator, error) {
	prior, err := decodePrior(doc.Prior)
	if err != nil {
		return nil, err
	}

	switch doc.Kind {
	case kindConstant:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}

		return simple.Constant(doc.Args[0], simpleOpts(prior, nil)...)
	case kindPolynomial:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}

		return simple.Polynomial(doc.Args[0], doc.Params.Degree, simpleOpts(prior, doc.Params.Intercept)...)
	case kindSinusoid:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}

		return simple.Sinusoid(doc.Args[0], doc.Params.Harmonics, simpleOpts(prior, doc.Params.Intercept)...)
	case kindGaussian:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}

		return gauss.Gaussian(doc.Args[0], doc.Params.Mean, doc.Params.Stddev, gaussOpts(prior)...)
	case kindDGaussian:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}

		return gauss.DGaussian(doc.Args[0], doc.Params.Mean, doc.Params.Stddev, gaussOpts(prior)...)
	case kindGaussian2D:
		if len(doc.Args) != 2 {
			return nil, ErrBadDocument
		}

		return gauss.Gaussian2D(doc.Args[0], doc.Args[1],
			doc.Params.MeanX, doc.Params.MeanY,
			doc.Params.StddevX, doc.Params.StddevY, gaussOpts(prior)...)
	case kindBSpline:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}
		var opts []spline.Option
		if prior != nil {
			opts = append(opts, spline.WithPrior(*prior))
		}

		return spline.BSpline(doc.Args[0], doc.Params.Knots, doc.Params.Degree, opts...)
	case kindFlare:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}
		var opts []astro.Option
		if prior != nil {
			opts = append(opts, astro.WithPrior(*prior))
		}

		return astro.Flare(doc.Args[0], doc.Params.Peak, doc.Params.Rise, doc.Params.Decay, opts...)
	case kindRamp:
		if len(doc.Args) != 1 {
			return nil, ErrBadDocument
		}
		var opts []astro.Option
		if prior != nil {
			opts = append(opts, astro.WithPrior(*prior))
		}

		return astro.ExponentialRamp(doc.Args[0], doc.Params.Tau, opts...)
	case kindStack:
		if len(doc.Components) < 2 {
			return nil, ErrBadDocument
		}
		subs := make([]generator.Generator, len(doc.Components))
		for i, sd := range doc.Components {
			if subs[i], err = decode(sd); err != nil {
				return nil, err
			}
		}

		return combined.Stack(subs...)
	case kindCrossterm:
		if len(doc.Components) != 2 {
			return nil, ErrBadDocument
		}
		a, err := decode(doc.Components[0])
		if err != nil {
			return nil, err
		}
		b, err := decode(doc.Components[1])
		if err != nil {
			return nil, err
		}
		var opts []combined.Option
		if prior != nil {
			opts = append(opts, combined.WithPrior(*prior))
		}

		return combined.Crossterm(a, b, opts...)
	default:
		return nil, ErrUnknownKind
	}
}

// decodePrior validates and copies a prior document; nil stays nil (the
// constructor's uninformative default takes over).
func decodePrior(pd *priorDoc) (*generator.Prior, error) {
	if pd == nil {
		return nil, nil
	}
	p, err := generator.PriorFromSlices(pd.Mu, pd.Sigma)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// simpleOpts assembles simple.Option values from decoded prior/intercept.
func simpleOpts(prior *generator.Prior, intercept *bool) []simple.Option {
	var opts []simple.Option
	if prior != nil {
		opts = append(opts, simple.WithPrior(*prior))
	}
	if intercept != nil && !*intercept {
		opts = append(opts, simple.WithoutIntercept())
	}

	return opts
}

// gaussOpts assembles gauss.Option values from a decoded prior.
func gaussOpts(prior *generator.Prior) []gauss.Option {
	var opts []gauss.Option
	if prior != nil {
		opts = append(opts, gauss.WithPrior(*prior))
	}

	return opts
}
