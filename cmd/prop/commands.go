package main

import (
	"github.com/scott-cotton/cli"

	"github.com/truthtab/go-prop/engine"
	"github.com/truthtab/go-prop/recorder"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{History: recorder.DefaultCapacity}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "prop").
		WithSynopsis("prop [opts] command [opts]").
		WithDescription("prop evaluates propositional logic expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return propMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			TableCommand(cfg),
			TautologyCommand(cfg),
			ContradictionCommand(cfg),
			EquivCommand(cfg),
			MetricsCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Assignment: map[string]bool{}}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-v NAME=BOOL ...] <expression>").
		WithDescription("Evaluate an expression under an assignment").
		WithOpts(&cli.Opt{
			Name:        "v",
			Description: "bind a variable",
			Type:        cli.NamedFuncOpt(assignFunc(cfg.Assignment), "(NAME=BOOL)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return propEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("table").
		WithAliases("t", "tt").
		WithSynopsis("table [-vars P,Q,...] <expression>").
		WithDescription("Print the truth table of an expression").
		WithOpts(varsOpt(&cfg.Vars)).
		WithRun(func(cc *cli.Context, args []string) error {
			return propTable(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func TautologyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tautology").
		WithAliases("taut").
		WithSynopsis("tautology [-vars P,Q,...] <expression>").
		WithDescription("Report whether an expression is always true").
		WithOpts(varsOpt(&cfg.Vars)).
		WithRun(func(cc *cli.Context, args []string) error {
			return propDetect(cfg, cc, args, true)
		})
	cfg.Detect = cmd
	return cmd
}

func ContradictionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("contradiction").
		WithAliases("contra").
		WithSynopsis("contradiction [-vars P,Q,...] <expression>").
		WithDescription("Report whether an expression is always false").
		WithOpts(varsOpt(&cfg.Vars)).
		WithRun(func(cc *cli.Context, args []string) error {
			return propDetect(cfg, cc, args, false)
		})
	cfg.Detect = cmd
	return cmd
}

func EquivCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EquivConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("equiv").
		WithAliases("eq").
		WithSynopsis("equiv [-vars P,Q,...] <expression1> <expression2>").
		WithDescription("Check two expressions for logical equivalence").
		WithOpts(varsOpt(&cfg.Vars)).
		WithRun(func(cc *cli.Context, args []string) error {
			return propEquiv(cfg, cc, args)
		})
	cfg.Equiv = cmd
	return cmd
}

func MetricsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MetricsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("metrics").
		WithAliases("m").
		WithSynopsis("metrics [-clear]").
		WithDescription("Show operation count, average duration and recent history").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return propMetrics(cfg, cc, args)
		})
	cfg.Metrics = cmd
	return cmd
}

func varsOpt(dst *[]string) *cli.Opt {
	return &cli.Opt{
		Name:        "vars",
		Description: "ordered variable list (default: variables in the expression)",
		Type:        cli.NamedFuncOpt(varsFunc(dst), "(P,Q,...)"),
	}
}

func (cfg *MainConfig) engine() *engine.Engine {
	if cfg.Engine == nil {
		cfg.Engine = engine.New(engine.WithHistoryCapacity(cfg.History))
	}
	return cfg.Engine
}
