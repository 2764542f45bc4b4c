// Package debug holds the env-gated debug switches. Each gate corresponds
// to one stage of the diff pipeline and is read once at startup.
package debug

import (
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

type debug struct {
	Diff    bool
	List    bool
	Set     bool
	Patch   bool
	Marshal bool
}

var d *debug

var logger = &log.Logger{
	Handler: text.New(os.Stderr),
	Level:   log.DebugLevel,
}

func init() {
	d = &debug{}
	d.Diff = boolEnv("JSONDELTA_DEBUG_DIFF")
	d.List = boolEnv("JSONDELTA_DEBUG_LIST")
	d.Set = boolEnv("JSONDELTA_DEBUG_SET")
	d.Patch = boolEnv("JSONDELTA_DEBUG_PATCH")
	d.Marshal = boolEnv("JSONDELTA_DEBUG_MARSHAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func List() bool {
	return d.List
}
func Set() bool {
	return d.Set
}
func Patch() bool {
	return d.Patch
}
func Marshal() bool {
	return d.Marshal
}

func Logf(format string, args ...any) {
	logger.Debugf(format, args...)
}
