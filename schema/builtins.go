package schema

import (
	"errors"

	"github.com/yayaml-go/yayaml/ir"
)

var errMerge = errors.New("merge key must be <<")

// Failsafe resolves nothing: every scalar stays a string and collections
// are returned as built.
func Failsafe() *Builtin {
	return &Builtin{name: "blank", tags: map[string]tagFunc{}}
}

// Core is the YAML 1.2 core schema.
func Core() *Builtin {
	return &Builtin{
		name: "yaml12",
		tags: map[string]tagFunc{
			ir.NullTag:  strict(nullMatcher(coreNulls...)),
			ir.BoolTag:  strict(boolMatcher(coreTrues, coreFalses)),
			ir.IntTag:   strict(coreInt),
			ir.FloatTag: strict(coreFloat),
			ir.StrTag:   str,
			// not part of the core schema proper, accepted so that
			// emitted []byte values read back
			ir.BinaryTag: binary,
		},
		implicit: []matcher{
			nullMatcher(coreNulls...),
			boolMatcher(coreTrues, coreFalses),
			coreInt,
			coreFloat,
		},
		float: coreFloat,
		null:  "null",
	}
}

// JSON is the YAML 1.2 JSON schema. Only the exact JSON literals resolve
// and everything is emitted in flow style with quoted strings.
func JSON() *Builtin {
	return &Builtin{
		name: "yaml12json",
		tags: map[string]tagFunc{
			ir.NullTag:  strict(nullMatcher("null")),
			ir.BoolTag:  strict(boolMatcher([]string{"true"}, []string{"false"})),
			ir.IntTag:   strict(jsonInt),
			ir.FloatTag: strict(jsonTaggedFloat),
			ir.StrTag:   str,
		},
		implicit: []matcher{
			nullMatcher("null"),
			boolMatcher([]string{"true"}, []string{"false"}),
			jsonInt,
			jsonFloat,
		},
		float: jsonTaggedFloat,
		null:  "null",
		json:  true,
	}
}

// Yaml11 is the YAML 1.1 type repository: the extended bool lexicon,
// binary, legacy octal, base 60, timestamps and the merge key.
func Yaml11() *Builtin {
	return &Builtin{
		name: "yaml11",
		tags: map[string]tagFunc{
			ir.NullTag:      strict(nullMatcher(coreNulls...)),
			ir.BoolTag:      strict(boolMatcher(yaml11Trues, yaml11False)),
			ir.IntTag:       strict(yaml11Int),
			ir.FloatTag:     strict(yaml11Float),
			ir.StrTag:       str,
			ir.TimestampTag: strict(yaml11Timestamp),
			ir.BinaryTag:    binary,
			ir.MergeTag:     merge,
		},
		implicit: []matcher{
			nullMatcher(coreNulls...),
			boolMatcher(yaml11Trues, yaml11False),
			yaml11Int,
			yaml11Float,
			yaml11Timestamp,
		},
		float:      yaml11Float,
		null:       "null",
		merge:      true,
		timestamps: true,
	}
}

func str(s string) (any, error) { return s, nil }

func merge(s string) (any, error) {
	if s != mergeKey {
		return nil, errMerge
	}
	return s, nil
}
