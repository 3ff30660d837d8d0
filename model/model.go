// Package model runs the analogical plural model over a noun list: every
// noun is predicted from the plurals of the similar nouns of the same list.
package model

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
	"github.com/revelaction/pluralis/predict"
	"github.com/revelaction/pluralis/search"
	"github.com/revelaction/pluralis/stat"
)

// ErrNoRepresentation is returned when a noun has no representation in the
// model mode.
var ErrNoRepresentation = errors.New("no representation")

// Model holds what a prediction run needs.
type Model struct {
	Builder  phoneme.Builder
	Searcher *search.Searcher
	Mode     noun.Mode
	Logger   *slog.Logger

	// Progress, when set, is called before each prediction of Run.
	Progress func(current, total int, n string)
}

func New(b phoneme.Builder, s *search.Searcher, mode noun.Mode, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Model{Builder: b, Searcher: s, Mode: mode, Logger: logger}
}

// Pool is the candidate set of a run.
type Pool struct {
	// Nouns are the nouns with a representation, in corpus order.
	Nouns []string

	// Reps are the distinct singular representations in corpus order.
	Reps []string

	Pairs map[string]noun.Pair
}

// Pool builds the representation pair of every noun. Nouns without a
// representation are left out.
func (m *Model) Pool(nouns []string) *Pool {
	p := &Pool{Pairs: make(map[string]noun.Pair, len(nouns))}
	seen := make(map[string]bool, len(nouns))
	missing := 0

	for _, n := range nouns {
		if _, ok := p.Pairs[n]; ok {
			continue
		}

		pair, ok := m.Builder.Build(n, m.Mode)
		if !ok {
			missing++
			m.Logger.Debug("no representation", "noun", n, "mode", m.Mode)
			continue
		}

		p.Nouns = append(p.Nouns, n)
		p.Pairs[n] = pair
		if !seen[pair.Singular] {
			seen[pair.Singular] = true
			p.Reps = append(p.Reps, pair.Singular)
		}
	}

	if missing > 0 {
		m.Logger.Info("nouns without representation", "mode", m.Mode, "count", missing, "total", len(nouns))
	}

	return p
}

// Run predicts the plural of every noun with a representation. Class is left
// to the caller.
func (m *Model) Run(nouns []string, plurals predict.PluralSource) (noun.Run, error) {
	return m.run(m.Pool(nouns), plurals)
}

func (m *Model) run(pool *Pool, plurals predict.PluralSource) (noun.Run, error) {
	run := noun.Run{
		RunInfo: noun.RunInfo{
			Mode:    m.Mode,
			Epsilon: m.Searcher.Epsilon,
			Limit:   m.Searcher.Limit,
		},
		Results: make([]noun.Result, 0, len(pool.Nouns)),
	}

	predictor := predict.NewPredictor(m.Mode, plurals, m.Logger)
	for i, n := range pool.Nouns {
		if m.Progress != nil {
			m.Progress(i+1, len(pool.Nouns), n)
		}

		res, _, err := m.predict(n, pool.Pairs[n], pool, predictor)
		if err != nil {
			return noun.Run{}, err
		}

		run.Results = append(run.Results, res)
		run.Total++
		if res.Correct {
			run.Correct++
		}
	}

	return run, nil
}

// Predict predicts the plural of a single noun against pool. The noun does
// not need to belong to the pool.
func (m *Model) Predict(n string, pool *Pool, plurals predict.PluralSource) (noun.Result, predict.Prediction, error) {
	pair, ok := pool.Pairs[n]
	if !ok {
		pair, ok = m.Builder.Build(n, m.Mode)
		if !ok {
			return noun.Result{}, predict.Prediction{}, fmt.Errorf("%q in %s: %w", n, m.Mode, ErrNoRepresentation)
		}
	}

	return m.predict(n, pair, pool, predict.NewPredictor(m.Mode, plurals, m.Logger))
}

func (m *Model) predict(n string, pair noun.Pair, pool *Pool, predictor *predict.Predictor) (noun.Result, predict.Prediction, error) {
	similar := m.Searcher.Find(pair.Singular, pool.Reps)
	if similar == nil {
		similar = []string{}
	}

	p, err := predictor.Predict(pair.Singular, similar)
	if err != nil {
		return noun.Result{}, predict.Prediction{}, fmt.Errorf("predicting %q: %w", n, err)
	}

	res := noun.Result{
		Noun:      n,
		Rep:       pair.Singular,
		Similar:   similar,
		Predicted: p.Plural,
		Actual:    pair.Plural,
		Correct:   p.Plural == pair.Plural,
	}

	return res, p, nil
}

// Sweep runs the model for every epsilon from 1 to maxEpsilon, both
// included, and returns the accuracy of each run. The pool is built once.
func (m *Model) Sweep(nouns []string, plurals predict.PluralSource, maxEpsilon int) ([]stat.Point, error) {
	pool := m.Pool(nouns)
	orig := m.Searcher
	defer func() { m.Searcher = orig }()

	var points []stat.Point
	for eps := 1; eps <= maxEpsilon; eps++ {
		m.Searcher = search.New(eps, orig.Limit)

		run, err := m.run(pool, plurals)
		if err != nil {
			return nil, err
		}

		point := stat.NewPoint(run.RunInfo)
		m.Logger.Info("sweep", "mode", m.Mode, "epsilon", eps, "accuracy", point.Accuracy)
		points = append(points, point)
	}

	return points, nil
}

// Builders tries each builder in turn.
type Builders []phoneme.Builder

func (bs Builders) Build(n string, mode noun.Mode) (noun.Pair, bool) {
	for _, b := range bs {
		if pair, ok := b.Build(n, mode); ok {
			return pair, true
		}
	}
	return noun.Pair{}, false
}
