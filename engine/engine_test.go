package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/truthtab/go-prop/analysis"
	"github.com/truthtab/go-prop/eval"
	"github.com/truthtab/go-prop/parse"
	"github.com/truthtab/go-prop/recorder"
	"github.com/truthtab/go-prop/table"
)

func TestEvaluate(t *testing.T) {
	e := New()
	tests := []struct {
		expr string
		asg  map[string]bool
		want bool
	}{
		{"P AND Q", map[string]bool{"P": true, "Q": true}, true},
		{"P AND Q", map[string]bool{"P": true, "Q": false}, false},
		{"P IMPLIES Q", map[string]bool{"P": false, "Q": false}, true},
		{"NOT (P OR Q)", map[string]bool{"P": false, "Q": false}, true},
		{"P BICONDITIONAL Q", map[string]bool{"P": true, "Q": true}, true},
	}
	for _, tt := range tests {
		got, err := e.Evaluate(tt.expr, tt.asg)
		if err != nil {
			t.Errorf("Evaluate(%q, %v): %v", tt.expr, tt.asg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Evaluate(%q, %v) = %v, want %v", tt.expr, tt.asg, got, tt.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	e := New()
	if _, err := e.Evaluate("P AND", map[string]bool{"P": true}); !errors.Is(err, parse.ErrParse) {
		t.Errorf("malformed input: err = %v, want ErrParse", err)
	}
	_, err := e.Evaluate("P AND Q", map[string]bool{"P": true})
	if !errors.Is(err, eval.ErrUndefinedVariable) {
		t.Errorf("missing variable: err = %v, want ErrUndefinedVariable", err)
	}
	var uv *eval.UndefinedVariableError
	if !errors.As(err, &uv) || uv.Name != "Q" {
		t.Errorf("missing variable: err = %v, want UndefinedVariableError for Q", err)
	}
}

func TestGenerateTruthTable(t *testing.T) {
	e := New()
	tbl, err := e.GenerateTruthTable([]string{"P", "Q"}, "P AND Q")
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(tbl.Rows))
	}
	want := []bool{true, false, false, false}
	for i, r := range tbl.Rows {
		if r.Err != nil {
			t.Fatalf("row %d: %v", i, r.Err)
		}
		if *r.Result != want[i] {
			t.Errorf("row %d = %v, want %v", i, *r.Result, want[i])
		}
	}
}

func TestGenerateTruthTableErrors(t *testing.T) {
	e := New()
	if _, err := e.GenerateTruthTable(nil, "P"); !errors.Is(err, table.ErrNoVariables) {
		t.Errorf("no variables: err = %v, want ErrNoVariables", err)
	}
	if _, err := e.GenerateTruthTable([]string{"P"}, "P AND"); !errors.Is(err, parse.ErrParse) {
		t.Errorf("malformed input: err = %v, want ErrParse", err)
	}
}

func TestDetectTautology(t *testing.T) {
	e := New()
	res, err := e.DetectTautology("P OR NOT P", []string{"P"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsTautology || res.IsContradiction {
		t.Errorf("P OR NOT P: %+v", res)
	}
	res, err = e.DetectTautology("P", []string{"P"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsTautology {
		t.Errorf("P alone reported as tautology")
	}
}

func TestDetectContradiction(t *testing.T) {
	e := New()
	res, err := e.DetectContradiction("P AND NOT P", []string{"P"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsContradiction || res.IsTautology {
		t.Errorf("P AND NOT P: %+v", res)
	}
}

func TestCheckEquivalence(t *testing.T) {
	e := New()
	vars := []string{"P", "Q"}

	res, err := e.CheckEquivalence("NOT (P AND Q)", "NOT P OR NOT Q", vars)
	if err != nil {
		t.Fatal(err)
	}
	if !res.AreEquivalent || res.Confidence != 100 {
		t.Errorf("De Morgan: %+v", res)
	}

	res, err = e.CheckEquivalence("P AND Q", "P OR Q", vars)
	if err != nil {
		t.Fatal(err)
	}
	if res.AreEquivalent || res.Confidence != 50 {
		t.Errorf("AND vs OR: %+v", res)
	}

	if _, err := e.CheckEquivalence("P", "Q", []string{"P"}); !errors.Is(err, analysis.ErrVariableMismatch) {
		t.Errorf("mismatched variables: err = %v, want ErrVariableMismatch", err)
	}
}

func TestParseCache(t *testing.T) {
	e := New()
	n1, err := e.parse("P AND Q")
	if err != nil {
		t.Fatal(err)
	}
	n2, err := e.parse("P AND Q")
	if err != nil {
		t.Fatal(err)
	}
	if n1 != n2 {
		t.Error("repeated parse of the same text returned distinct trees")
	}
}

func TestMetricsPerOperation(t *testing.T) {
	e := New()
	e.Evaluate("P", map[string]bool{"P": true})
	e.GenerateTruthTable([]string{"P"}, "P")
	e.DetectTautology("P OR NOT P", []string{"P"})
	e.CheckEquivalence("P", "P", []string{"P"})
	e.Evaluate("P AND", nil) // failed operations are recorded too

	m := e.Metrics()
	if m.Count != 5 {
		t.Fatalf("Count = %d, want 5", m.Count)
	}
	kinds := []recorder.Kind{
		recorder.KindEvaluate,
		recorder.KindTruthTable,
		recorder.KindTautology,
		recorder.KindEquivalence,
		recorder.KindEvaluate,
	}
	for i, k := range kinds {
		if m.Recent[i].Kind != k {
			t.Errorf("Recent[%d].Kind = %s, want %s", i, m.Recent[i].Kind, k)
		}
	}
	if !m.Recent[4].Failed {
		t.Error("failed evaluation not marked Failed")
	}

	e.ClearHistory()
	if m := e.Metrics(); m.Count != 0 || len(m.Recent) != 0 {
		t.Errorf("after ClearHistory: %+v", m)
	}
}

func TestHistoryCapacityOption(t *testing.T) {
	e := New(WithHistoryCapacity(2))
	for i := 0; i < 4; i++ {
		e.Evaluate("P", map[string]bool{"P": true})
	}
	m := e.Metrics()
	if m.Count != 4 {
		t.Errorf("Count = %d, want 4", m.Count)
	}
	if len(m.Recent) != 2 {
		t.Errorf("Recent = %d records, want 2", len(m.Recent))
	}
}

func TestConcurrentUse(t *testing.T) {
	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			expr := fmt.Sprintf("P%d OR NOT P%d", i%3, i%3)
			for j := 0; j < 25; j++ {
				if _, err := e.DetectTautology(expr, []string{fmt.Sprintf("P%d", i%3)}); err != nil {
					t.Errorf("DetectTautology(%q): %v", expr, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	if got := e.Metrics().Count; got != 200 {
		t.Errorf("Count = %d, want 200", got)
	}
}
