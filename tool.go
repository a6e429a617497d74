package yayaml

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/encode"
	"github.com/yayaml-go/yayaml/gomap"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/parse"
	"github.com/yayaml-go/yayaml/schema"
)

// ConvertFromYAML parses every document of data and resolves it to native
// values. Empty input gives no values.
func ConvertFromYAML(data []byte, opts ...gomap.UnmapOption) ([]any, error) {
	nodes, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	res := make([]any, 0, len(nodes))
	for i, node := range nodes {
		v, err := gomap.FromIR(node, opts...)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// ConvertToYAML writes each value as its own document.
func ConvertToYAML(values []any, opts ...gomap.MapOption) ([]byte, []gomap.Warning, error) {
	return convertToYAML(values, nil, opts...)
}

func convertToYAML(values []any, encOpts []encode.EncodeOption, opts ...gomap.MapOption) ([]byte, []gomap.Warning, error) {
	var warnings []gomap.Warning
	nodes := make([]*ir.Node, 0, len(values))
	for i, v := range values {
		node, ws, err := gomap.ToIRWithWarnings(v, opts...)
		warnings = append(warnings, ws...)
		if err != nil {
			return nil, warnings, fmt.Errorf("value %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(nodes, buf, encOpts...); err != nil {
		return nil, warnings, err
	}
	return buf.Bytes(), warnings, nil
}

// Tool holds conversion settings for repeated use.
type Tool struct {
	Schema schema.Schema
	Logger log.Logger

	// Depth is the collection depth ToYAML descends into.
	Depth  int
	Indent int

	// KeepFormat makes FromYAML keep styles and comments.
	KeepFormat bool
}

func DefaultTool() *Tool {
	return &Tool{
		Schema: schema.Default(),
		Depth:  gomap.DefaultDepth,
		Indent: 2,
		Logger: log.NewNopLogger(),
	}
}

func (t *Tool) FromYAML(data []byte) ([]any, error) {
	if debug.Convert() {
		debug.Logf("tool: from yaml with %s, keep format %t\n", schemaName(t.Schema), t.KeepFormat)
	}
	return ConvertFromYAML(data,
		gomap.WithSchema(t.Schema),
		gomap.WithLogger(t.Logger),
		gomap.KeepFormat(t.KeepFormat))
}

func (t *Tool) ToYAML(values ...any) ([]byte, []gomap.Warning, error) {
	if debug.Convert() {
		debug.Logf("tool: to yaml with %s, depth %d\n", schemaName(t.Schema), t.Depth)
	}
	return convertToYAML(values, []encode.EncodeOption{encode.Indent(t.Indent)},
		gomap.WithSchema(t.Schema),
		gomap.WithLogger(t.Logger),
		gomap.Depth(t.Depth))
}

// RoundTrip parses data keeping its format and writes it again. Parsed
// values are finite trees so no depth limit applies.
func (t *Tool) RoundTrip(data []byte) ([]byte, []gomap.Warning, error) {
	keep := *t
	keep.KeepFormat = true
	keep.Depth = math.MaxInt32
	values, err := keep.FromYAML(data)
	if err != nil {
		return nil, nil, err
	}
	return keep.ToYAML(values...)
}

func schemaName(s schema.Schema) string {
	if s == nil {
		return schema.Default().Name()
	}
	return s.Name()
}
