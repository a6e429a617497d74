package gomap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Enumerator lists the externally visible members of a composite in a
// stable order. Values implementing it are flattened through Members
// instead of struct reflection.
type Enumerator interface {
	Members() ([]Member, error)
}

// Member is one named member of a composite. Get may fail or panic, the
// failure then stands in for the value.
type Member struct {
	Name string
	Get  func() (any, error)
}

// Field is a Member with a fixed value.
func Field(name string, v any) Member {
	return Member{Name: name, Get: func() (any, error) { return v, nil }}
}

var errNilEmbedded = errors.New("nil embedded pointer")

type fieldTag struct {
	name      string
	skip      bool
	omitEmpty bool
	inline    bool
}

// parseFieldTag reads a `yaml:"name,omitempty,inline"` struct tag.
func parseFieldTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("yaml")
	if !ok {
		return fieldTag{name: f.Name}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}
	name, flags, _ := strings.Cut(tag, ",")
	res := fieldTag{name: name}
	if res.name == "" {
		res.name = f.Name
	}
	for _, flag := range strings.Split(flags, ",") {
		switch flag {
		case "omitempty":
			res.omitEmpty = true
		case "inline":
			res.inline = true
		}
	}
	return res
}

type structMember struct {
	Member
	level int
}

// structMembers lists the exported fields of a struct value in declaration
// order. Embedded and inline structs are flattened into their parent, a
// shallower field wins over a promoted one of the same name.
func structMembers(val reflect.Value) []Member {
	var all []structMember
	collectMembers(val, val.Type(), 0, nil, &all)
	best := map[string]int{}
	for _, m := range all {
		if lvl, ok := best[m.Name]; !ok || m.level < lvl {
			best[m.Name] = m.level
		}
	}
	res := make([]Member, 0, len(all))
	seen := map[string]bool{}
	for _, m := range all {
		if seen[m.Name] || best[m.Name] != m.level {
			continue
		}
		seen[m.Name] = true
		res = append(res, m.Member)
	}
	return res
}

// collectMembers adds the fields of typ. val is invalid when an embedded
// pointer on the way is nil, readErr then says which one.
func collectMembers(val reflect.Value, typ reflect.Type, level int, readErr error, out *[]structMember) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := parseFieldTag(f)
		if tag.skip {
			continue
		}
		ft := f.Type
		if (f.Anonymous && tag.name == f.Name) || tag.inline {
			inner := ft
			if inner.Kind() == reflect.Pointer {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				fv, err := embedded(val, i, readErr, f)
				collectMembers(fv, inner, level+1, err, out)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		var fv reflect.Value
		if val.IsValid() {
			fv = val.Field(i)
		}
		if tag.omitEmpty && fv.IsValid() && fv.IsZero() {
			continue
		}
		name, err := tag.name, readErr
		*out = append(*out, structMember{
			Member: Member{Name: name, Get: func() (any, error) {
				if err != nil {
					return nil, err
				}
				return fv.Interface(), nil
			}},
			level: level,
		})
	}
}

func embedded(val reflect.Value, i int, readErr error, f reflect.StructField) (reflect.Value, error) {
	if readErr != nil || !val.IsValid() {
		return reflect.Value{}, readErr
	}
	fv := val.Field(i)
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w %s", errNilEmbedded, f.Type)
		}
		fv = fv.Elem()
	}
	return fv, nil
}
