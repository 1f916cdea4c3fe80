package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVarsOrder(t *testing.T) {
	tests := []struct {
		node *Node
		want []string
	}{
		{Var("P"), []string{"P"}},
		{And(Var("Q"), Var("P")), []string{"Q", "P"}},
		{Or(And(Var("P"), Var("Q")), Var("P")), []string{"P", "Q"}},
		{Implies(Not(Var("Z")), Iff(Var("A"), Var("Z"))), []string{"Z", "A"}},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, tt.node.Vars()); d != "" {
			t.Errorf("Vars of %s (-want +got):\n%s", tt.node, d)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{Var("P"), "P"},
		{Not(Var("P")), "NOT P"},
		{And(Var("P"), Var("Q")), "P AND Q"},
		{Or(Var("P"), And(Var("Q"), Var("R"))), "P OR Q AND R"},
		{And(Var("P"), Or(Var("Q"), Var("R"))), "P AND (Q OR R)"},
		{Not(And(Var("P"), Var("Q"))), "NOT (P AND Q)"},
		{Implies(Var("P"), Var("Q")), "P IMPLIES Q"},
		{Iff(Var("P"), Var("Q")), "P BICONDITIONAL Q"},
	}
	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	orig := Implies(And(Var("P"), Not(Var("Q"))), Var("R"))
	dup := orig.Clone()
	if d := cmp.Diff(orig, dup); d != "" {
		t.Fatalf("clone differs:\n%s", d)
	}
	dup.Left.Left.Name = "X"
	if orig.Left.Left.Name != "P" {
		t.Error("clone shares nodes with original")
	}
}

func TestVisitStops(t *testing.T) {
	n := And(Var("P"), Var("Q"))
	count := 0
	n.Visit(func(*Node) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("visited %d nodes, want 2", count)
	}
}
