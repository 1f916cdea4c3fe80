package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Eval     bool
	Analysis bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PROP_DEBUG_PARSE")
	d.Eval = boolEnv("PROP_DEBUG_EVAL")
	d.Analysis = boolEnv("PROP_DEBUG_ANALYSIS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Analysis() bool {
	return d.Analysis
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
