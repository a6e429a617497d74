package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Schema  bool
	Convert bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAYAML_DEBUG_PARSE")
	d.Encode = boolEnv("YAYAML_DEBUG_ENCODE")
	d.Schema = boolEnv("YAYAML_DEBUG_SCHEMA")
	d.Convert = boolEnv("YAYAML_DEBUG_CONVERT")
	d.Eval = boolEnv("YAYAML_DEBUG_EVAL")
	if boolEnv("YAYAML_DEBUG") {
		*d = debug{Parse: true, Encode: true, Schema: true, Convert: true, Eval: true}
	}
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
func Schema() bool {
	return d.Schema
}
func Convert() bool {
	return d.Convert
}
func Eval() bool {
	return d.Eval
}
