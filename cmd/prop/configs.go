package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/truthtab/go-prop/engine"
	"github.com/truthtab/go-prop/render"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='colorize output'"`
	History int  `cli:"name=history desc='analysis history capacity'"`

	Engine *engine.Engine
	Main   *cli.Command
}

// renderOpts decides coloring: explicit -color wins, otherwise color
// only when writing to a terminal.
func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	if cfg.Color {
		return []render.Option{render.WithColor(true)}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	return []render.Option{render.WithColor(isatty.IsTerminal(f.Fd()))}
}

type EvalConfig struct {
	*MainConfig
	Assignment map[string]bool

	Eval *cli.Command
}

type TableConfig struct {
	*MainConfig
	Vars []string

	Table *cli.Command
}

type DetectConfig struct {
	*MainConfig
	Vars []string

	Detect *cli.Command
}

type EquivConfig struct {
	*MainConfig
	Vars []string

	Equiv *cli.Command
}

type MetricsConfig struct {
	*MainConfig
	Clear bool `cli:"name=clear desc='reset history and statistics'"`

	Metrics *cli.Command
}

// assignFunc parses -v NAME=BOOL options.
func assignFunc(asg map[string]bool) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected NAME=BOOL, got %q", cli.ErrUsage, a)
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("%w: bad truth value %q: %w", cli.ErrUsage, val, err)
		}
		asg[name] = b
		return b, nil
	})
}

// varsFunc parses -vars P,Q,R options.
func varsFunc(dst *[]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		for _, name := range strings.Split(a, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("%w: empty variable name in %q", cli.ErrUsage, a)
			}
			*dst = append(*dst, name)
		}
		return *dst, nil
	})
}
