package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lines bool
	Build bool
	Patch bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lines = boolEnv("INDENTS_DEBUG_LINES")
	d.Build = boolEnv("INDENTS_DEBUG_BUILD")
	d.Patch = boolEnv("INDENTS_DEBUG_PATCH")
	d.Match = boolEnv("INDENTS_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lines() bool {
	return d.Lines
}
func Build() bool {
	return d.Build
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
