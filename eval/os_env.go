package eval

import (
	"os"
	"strings"

	"github.com/yayaml-go/yayaml/debug"
)

var osenvSym = Func(osenvName, func(params ...any) (any, error) {
	key := strings.TrimSpace(params[0].(string))
	if debug.Eval() {
		debug.Logf("getenv %q\n", key)
	}
	return os.Getenv(key), nil
}, new(func(string) string))

// OSEnv is getenv(name), the value of an environment variable.
func OSEnv() Symbol {
	return osenvSym
}

const (
	osenvName = "getenv"
)
