// Package encode writes IR nodes as YAML text through gopkg.in/yaml.v3.
//
// # Usage
//
//	node := ir.Mapping(
//	    []*ir.Node{ir.Scalar("name")},
//	    []*ir.Node{ir.Scalar("alice").WithScalarStyle(ir.DoubleQuoted)},
//	)
//	err := encode.EncodeOne(node, os.Stdout, encode.Indent(4))
//
// Explicit tags on nodes are always written. Scalars with ScalarAny or
// Plain style are written plain when the engine allows it.
//
// # Related Packages
//
//   - github.com/yayaml-go/yayaml/ir - IR representation
//   - github.com/yayaml-go/yayaml/parse - Parse text to IR
package encode
