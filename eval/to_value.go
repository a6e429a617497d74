package eval

import (
	"fmt"

	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/gomap"
	"github.com/yayaml-go/yayaml/parse"
	"github.com/yayaml-go/yayaml/schema"
)

// toValue parses text as a YAML document and resolves it through base.
func toValue(text string, base schema.Schema) (any, error) {
	if debug.Eval() {
		debug.Logf("tovalue %q through %s\n", text, base.Name())
	}
	node, err := parse.ParseOne([]byte(text), parse.ParseComments(false))
	if err != nil {
		return nil, fmt.Errorf("tovalue: %w", err)
	}
	return gomap.FromIR(node, gomap.WithSchema(base))
}
