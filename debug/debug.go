// Package debug gates stderr tracing behind SJ_DEBUG_* environment flags.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	CLI    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SJ_DEBUG_PARSE")
	d.Encode = boolEnv("SJ_DEBUG_ENCODE")
	d.CLI = boolEnv("SJ_DEBUG_CLI")
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
func Encode() bool {
	return d.Encode
}
func CLI() bool {
	return d.CLI
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
