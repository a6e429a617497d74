// Package yayaml converts YAML text to native Go values and back under a
// selectable schema: YAML 1.1, YAML 1.2 core or YAML 1.2 JSON.
//
//	values, err := yayaml.ConvertFromYAML(data)
//	out, warnings, err := yayaml.ConvertToYAML(values)
//
// The packages below do the work and can be used directly:
//
//   - parse and encode connect IR nodes to YAML text
//   - schema resolves and emits scalars
//   - gomap maps IR nodes to Go values
//   - format carries styles and comments on values
package yayaml
