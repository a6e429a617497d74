// Package gomap converts between IR nodes and native Go values through a
// schema.
//
// # Usage
//
//	// IR to Go values
//	v, err := gomap.FromIR(node, gomap.WithSchema(schema.Yaml11()))
//
//	// Go values to IR, with warnings for anything dropped
//	node, warnings, err := gomap.ToIRWithWarnings(v, gomap.Depth(4))
//
//	// Keep styles and comments across a round trip
//	v, err := gomap.FromIR(node, gomap.KeepFormat(true))
//	node, err = gomap.ToIR(v)
//
// Mappings decode to *ir.OrderedMap and sequences to []any. Encoding
// accepts scalars, slices, arrays, maps, structs (honoring `yaml` field
// tags), *ir.OrderedMap, values implementing Enumerator and
// format.Annotated wrappers.
//
// # Related Packages
//
//   - github.com/yayaml-go/yayaml/ir - IR representation
//   - github.com/yayaml-go/yayaml/schema - scalar resolution and emission
//   - github.com/yayaml-go/yayaml/format - format metadata
package gomap
