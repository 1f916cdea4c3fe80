package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/truthtab/go-prop/analysis"
	"github.com/truthtab/go-prop/parse"
	"github.com/truthtab/go-prop/render"
)

func propMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func propEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: eval takes exactly one expression", cli.ErrUsage)
	}
	res, err := cfg.engine().Evaluate(args[0], cfg.Assignment)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%v\n", res)
	return nil
}

func propTable(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: table takes exactly one expression", cli.ErrUsage)
	}
	vars, err := exprVars(cfg.Vars, args[0])
	if err != nil {
		return err
	}
	t, err := cfg.engine().GenerateTruthTable(vars, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, render.Table(t, cfg.renderOpts(cc.Out)...))
	return nil
}

func propDetect(cfg *DetectConfig, cc *cli.Context, args []string, tautology bool) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one expression", cli.ErrUsage)
	}
	vars, err := exprVars(cfg.Vars, args[0])
	if err != nil {
		return err
	}
	var res *analysis.PropertyResult
	if tautology {
		res, err = cfg.engine().DetectTautology(args[0], vars)
	} else {
		res, err = cfg.engine().DetectContradiction(args[0], vars)
	}
	if err != nil {
		return err
	}
	verdict := res.IsTautology
	if !tautology {
		verdict = res.IsContradiction
	}
	fmt.Fprintf(cc.Out, "%v (%d rows evaluated)\n", verdict, res.RowsEvaluated)
	return nil
}

func propEquiv(cfg *EquivConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equiv.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equiv takes exactly two expressions", cli.ErrUsage)
	}
	vars := cfg.Vars
	if len(vars) == 0 {
		// Union of both expressions' variables, first-appearance order.
		vars, err = exprVars(nil, args[0])
		if err != nil {
			return err
		}
		more, err := exprVars(nil, args[1])
		if err != nil {
			return err
		}
		seen := map[string]bool{}
		for _, v := range vars {
			seen[v] = true
		}
		for _, v := range more {
			if !seen[v] {
				vars = append(vars, v)
			}
		}
	}
	eng := cfg.engine()
	res, err := eng.CheckEquivalence(args[0], args[1], vars)
	if err != nil {
		return err
	}
	t1, err := eng.GenerateTruthTable(vars, args[0])
	if err != nil {
		return err
	}
	t2, err := eng.GenerateTruthTable(vars, args[1])
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, render.EquivalenceReport(res, t1, t2, cfg.renderOpts(cc.Out)...))
	return nil
}

func propMetrics(cfg *MetricsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Metrics.Parse(cc, args); err != nil {
		return err
	}
	if cfg.Clear {
		cfg.engine().ClearHistory()
		fmt.Fprintln(cc.Out, "history cleared")
		return nil
	}
	m := cfg.engine().Metrics()
	fmt.Fprintf(cc.Out, "operations: %d\n", m.Count)
	fmt.Fprintf(cc.Out, "average duration: %.6fs\n", m.AverageSeconds)
	for _, r := range m.Recent {
		fmt.Fprintf(cc.Out, "  %s %v -> %s (%s)\n",
			r.Kind, r.Expressions, r.Outcome, r.Duration)
	}
	return nil
}

// exprVars returns explicit when given, else the variables referenced
// by expression in first-appearance order.
func exprVars(explicit []string, expression string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	node, err := parse.Parse(expression)
	if err != nil {
		return nil, err
	}
	return node.Vars(), nil
}
