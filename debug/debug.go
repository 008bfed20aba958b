package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mcscan/biomefind/encode"
	"github.com/mcscan/biomefind/ir"
)

type debug struct {
	Decode bool
	Walk   bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("BIOMEFIND_DEBUG_DECODE")
	d.Walk = boolEnv("BIOMEFIND_DEBUG_WALK")
	d.Match = boolEnv("BIOMEFIND_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Walk() bool {
	return d.Walk
}
func Match() bool {
	return d.Match
}

// Logf writes to stderr, rendering *ir.Node arguments as text trees.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = encode.MustString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
