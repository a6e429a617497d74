// Package format carries formatting metadata next to native values.
//
// A value produced by parsing is a plain Go value and has no room for the
// style it was written in or the comments around it. Wrapping it as
// Annotated keeps that information so that the converter can write the
// value back the way it was:
//
//	v := format.Annotate("0755", format.WithScalarStyle(ir.SingleQuoted),
//	    format.WithComment("permissions"))
//
// Style and comment placement is decided by the converter in
// [github.com/yayaml-go/yayaml/gomap].
package format
