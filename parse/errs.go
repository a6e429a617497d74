package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yayaml-go/yayaml/ir"
)

var (
	ErrParse          = ir.ErrParse
	ErrRecursiveAlias = fmt.Errorf("%w: recursive alias", ErrParse)
	ErrAlias          = fmt.Errorf("%w: alias without anchor", ErrParse)
)

// engineError wraps a yaml.v3 failure for document doc. The engine reports
// positions only as text, "yaml: line N: ...".
func engineError(doc int, err error) *ir.ParseDocumentError {
	res := &ir.ParseDocumentError{Document: doc, Err: err}
	if line, ok := engineLine(err.Error()); ok {
		res.Start = ir.Pos{Line: line}
		res.End = res.Start
	}
	return res
}

func engineLine(msg string) (int, bool) {
	const marker = "line "
	i := strings.Index(msg, marker)
	if i < 0 {
		return 0, false
	}
	msg = msg[i+len(marker):]
	j := 0
	for j < len(msg) && msg[j] >= '0' && msg[j] <= '9' {
		j++
	}
	n, err := strconv.Atoi(msg[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
