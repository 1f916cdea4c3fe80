// Package engine ties the parser, evaluator, table generator and
// analyzers together behind the function contract consumed by
// front-end collaborators. One Engine is constructed by the
// surrounding application and shared; all its methods are safe for
// concurrent use.
package engine

import (
	"strconv"
	"sync"
	"time"

	"github.com/truthtab/go-prop/analysis"
	"github.com/truthtab/go-prop/debug"
	"github.com/truthtab/go-prop/eval"
	"github.com/truthtab/go-prop/ir"
	"github.com/truthtab/go-prop/parse"
	"github.com/truthtab/go-prop/recorder"
	"github.com/truthtab/go-prop/table"
)

type Engine struct {
	rec *recorder.Recorder

	// Parse cache keyed by expression text. Inputs are pure strings,
	// entries are immutable trees, so no invalidation exists.
	mu    sync.RWMutex
	cache map[string]*ir.Node
}

type Option func(*Engine)

// WithHistoryCapacity bounds the analysis recorder's log.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) {
		e.rec = recorder.New(n)
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		rec:   recorder.New(recorder.DefaultCapacity),
		cache: map[string]*ir.Node{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) parse(expression string) (*ir.Node, error) {
	e.mu.RLock()
	node, ok := e.cache[expression]
	e.mu.RUnlock()
	if ok {
		return node, nil
	}
	node, err := parse.Parse(expression)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %q -> %s\n", expression, node)
	}
	e.mu.Lock()
	e.cache[expression] = node
	e.mu.Unlock()
	return node, nil
}

// Evaluate parses expression and computes its value under assignment.
func (e *Engine) Evaluate(expression string, assignment map[string]bool) (bool, error) {
	start := time.Now()
	node, err := e.parse(expression)
	if err != nil {
		e.record(recorder.KindEvaluate, []string{expression}, nil, "", err, start)
		return false, err
	}
	res, err := eval.Eval(node, assignment)
	if debug.Eval() {
		debug.Logf("eval %q under %v -> %v (%v)\n", expression, assignment, res, err)
	}
	e.record(recorder.KindEvaluate, []string{expression}, nil,
		strconv.FormatBool(res), err, start)
	return res, err
}

// GenerateTruthTable enumerates all assignments of variables and
// evaluates expression under each.
func (e *Engine) GenerateTruthTable(variables []string, expression string) (*table.TruthTable, error) {
	start := time.Now()
	t, err := e.generate(variables, expression)
	outcome := ""
	if t != nil {
		outcome = strconv.Itoa(len(t.Rows)) + " rows"
	}
	e.record(recorder.KindTruthTable, []string{expression}, variables, outcome, err, start)
	return t, err
}

func (e *Engine) generate(variables []string, expression string) (*table.TruthTable, error) {
	node, err := e.parse(expression)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(variables); err != nil {
		return nil, err
	}
	return table.FromNode(variables, expression, node), nil
}

// DetectTautology reports whether expression holds under every
// assignment of variables.
func (e *Engine) DetectTautology(expression string, variables []string) (*analysis.PropertyResult, error) {
	start := time.Now()
	t, err := e.generate(variables, expression)
	if err != nil {
		e.record(recorder.KindTautology, []string{expression}, variables, "", err, start)
		return nil, err
	}
	res := analysis.Properties(t)
	if debug.Analysis() {
		debug.Logf("tautology %q: %v\n", expression, res.IsTautology)
	}
	e.record(recorder.KindTautology, []string{expression}, variables,
		strconv.FormatBool(res.IsTautology), nil, start)
	return res, nil
}

// DetectContradiction reports whether expression is false under every
// assignment of variables.
func (e *Engine) DetectContradiction(expression string, variables []string) (*analysis.PropertyResult, error) {
	start := time.Now()
	t, err := e.generate(variables, expression)
	if err != nil {
		e.record(recorder.KindContradiction, []string{expression}, variables, "", err, start)
		return nil, err
	}
	res := analysis.Properties(t)
	if debug.Analysis() {
		debug.Logf("contradiction %q: %v\n", expression, res.IsContradiction)
	}
	e.record(recorder.KindContradiction, []string{expression}, variables,
		strconv.FormatBool(res.IsContradiction), nil, start)
	return res, nil
}

// CheckEquivalence compares two expressions over a shared variable
// list.
func (e *Engine) CheckEquivalence(expr1, expr2 string, variables []string) (*analysis.EquivalenceResult, error) {
	start := time.Now()
	exprs := []string{expr1, expr2}
	t1, err := e.generate(variables, expr1)
	if err != nil {
		e.record(recorder.KindEquivalence, exprs, variables, "", err, start)
		return nil, err
	}
	t2, err := e.generate(variables, expr2)
	if err != nil {
		e.record(recorder.KindEquivalence, exprs, variables, "", err, start)
		return nil, err
	}
	res, err := analysis.CheckEquivalence(t1, t2)
	outcome := ""
	if res != nil {
		outcome = strconv.FormatBool(res.AreEquivalent)
	}
	e.record(recorder.KindEquivalence, exprs, variables, outcome, err, start)
	return res, err
}

// Metrics snapshots the recorder.
func (e *Engine) Metrics() recorder.Metrics {
	return e.rec.Metrics()
}

// ClearHistory resets the recorder's log and statistics.
func (e *Engine) ClearHistory() {
	e.rec.Clear()
}

func (e *Engine) record(kind recorder.Kind, exprs, vars []string, outcome string, err error, start time.Time) {
	e.rec.Record(recorder.Record{
		Kind:        kind,
		Expressions: exprs,
		Variables:   vars,
		Outcome:     outcome,
		Failed:      err != nil,
		Duration:    time.Since(start),
	})
}
