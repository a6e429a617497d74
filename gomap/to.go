package gomap

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/format"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/numeric"
)

// ToIR converts a Go value to an IR node through the configured schema.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	node, _, err := ToIRWithWarnings(v, opts...)
	return node, err
}

// ToIRWithWarnings is ToIR that also returns the warnings raised.
func ToIRWithWarnings(v any, opts ...MapOption) (*ir.Node, []Warning, error) {
	e := &encoder{
		cfg:     newMapConfig(opts),
		visited: make(map[refKey]string),
	}
	node, err := e.node(v, "", e.cfg.depth, false)
	if err != nil {
		return nil, e.warnings, err
	}
	return node, e.warnings, nil
}

// refKey identifies a reference. A struct and its first field share an
// address, so the type is part of the key.
type refKey struct {
	typ reflect.Type
	ptr uintptr
}

type encoder struct {
	cfg       *mapConfig
	visited   map[refKey]string // references on the current descent path
	warnings  []Warning
	truncated bool
}

func (e *encoder) warn(kind WarningKind, path, msg string) {
	w := Warning{Kind: kind, Path: path, Message: msg}
	e.warnings = append(e.warnings, w)
	lvl := level.Warn(e.cfg.logger)
	if kind == MemberAccess {
		lvl = level.Debug(e.cfg.logger)
	}
	lvl.Log("msg", msg, "kind", kind.String(), "path", path)
	if e.cfg.onWarning != nil {
		e.cfg.onWarning(w)
	}
}

func (e *encoder) node(v any, path string, depth int, inFlow bool) (*ir.Node, error) {
	inner, meta := format.Unwrap(v)
	if debug.Convert() {
		debug.Logf("to: %s %T depth %d\n", path, inner, depth)
	}
	if inner == nil || ir.IsNullKey(inner) {
		return e.scalar(nil, meta, path, inFlow)
	}
	val := reflect.ValueOf(inner)
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if val.IsNil() {
			if _, ok := inner.([]byte); !ok {
				return e.scalar(nil, meta, path, inFlow)
			}
		}
	}

	// pointers do not consume depth
	if val.Kind() == reflect.Pointer && !opaquePointer(inner) {
		leave, prev, ok := e.visit(val, path)
		if !ok {
			return e.cycle(inner, meta, prev, path, depth, inFlow)
		}
		defer leave()
		return e.node(rewrap(val.Elem().Interface(), meta), path, depth, inFlow)
	}

	if isScalarLike(inner) || e.cfg.schema.IsScalar(inner) {
		return e.scalar(inner, meta, path, inFlow)
	}
	if _, ok := numeric.Normalize(inner); ok {
		return e.scalar(inner, meta, path, inFlow)
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		leave, prev, ok := e.visit(val, path)
		if !ok {
			return e.cycle(inner, meta, prev, path, depth, inFlow)
		}
		defer leave()
	}

	if depth < 0 {
		return e.truncate(inner, meta, path, inFlow)
	}

	switch x := inner.(type) {
	case *ir.OrderedMap:
		return e.mapping(x, meta, path, depth, inFlow)
	case Enumerator:
		m, err := e.enumerate(x, path)
		if err != nil {
			return e.scalar(err.Error(), meta, path, inFlow)
		}
		return e.mapping(m, meta, path, depth, inFlow)
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, val.Len())
		for i := range items {
			items[i] = val.Index(i).Interface()
		}
		return e.sequence(items, meta, path, depth, inFlow)
	case reflect.Map:
		return e.mapping(sortedMap(val), meta, path, depth, inFlow)
	case reflect.Struct:
		return e.mapping(e.members(structMembers(val), path), meta, path, depth, inFlow)
	}
	return e.scalar(fmt.Sprint(inner), meta, path, inFlow)
}

// visit puts the reference val on the current path. When it already is
// there, ok is false and prev is the path it was first seen at.
func (e *encoder) visit(val reflect.Value, path string) (leave func(), prev string, ok bool) {
	k := refKey{typ: val.Type(), ptr: val.Pointer()}
	if prev, seen := e.visited[k]; seen {
		return nil, prev, false
	}
	e.visited[k] = path
	return func() { delete(e.visited, k) }, "", true
}

// cycle reports a reference back to an ancestor. Past the depth budget the
// value is truncated like any other.
func (e *encoder) cycle(v any, meta *format.Metadata, prev, path string, depth int, inFlow bool) (*ir.Node, error) {
	if depth < 0 {
		return e.truncate(v, meta, path, inFlow)
	}
	return nil, &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("circular reference detected: %s -> %s (previously seen at %s)", displayPath(prev), displayPath(path), displayPath(prev)),
		Err:       ErrCycle,
	}
}

// truncate stringifies v, warning once per call.
func (e *encoder) truncate(v any, meta *format.Metadata, path string, inFlow bool) (*ir.Node, error) {
	if !e.truncated {
		e.truncated = true
		e.warn(DepthExceeded, path, fmt.Sprintf("depth %d exceeded, value stringified", e.cfg.depth))
	}
	return e.scalar(stringify(v), meta, path, inFlow)
}

// stringify is fmt.Sprint, except for values that refer back to
// themselves, which fmt would print forever.
func stringify(v any) string {
	if cyclic(reflect.ValueOf(v), map[refKey]bool{}) {
		return fmt.Sprintf("<circular %T>", v)
	}
	return fmt.Sprint(v)
}

func cyclic(val reflect.Value, onPath map[refKey]bool) bool {
	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return false
		}
		k := refKey{typ: val.Type(), ptr: val.Pointer()}
		if onPath[k] {
			return true
		}
		onPath[k] = true
		defer delete(onPath, k)
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return false
		}
		return cyclic(val.Elem(), onPath)
	case reflect.Slice, reflect.Array:
		if !mayRefer(val.Type().Elem()) {
			return false
		}
		for i := 0; i < val.Len(); i++ {
			if cyclic(val.Index(i), onPath) {
				return true
			}
		}
	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			if cyclic(iter.Key(), onPath) || cyclic(iter.Value(), onPath) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			if cyclic(val.Field(i), onPath) {
				return true
			}
		}
	}
	return false
}

func mayRefer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// rewrap keeps the metadata of a pointer on the value it points to.
func rewrap(v any, meta *format.Metadata) any {
	if meta == nil {
		return v
	}
	return format.Annotated[any]{Value: v, Format: meta}
}

// opaquePointer reports whether the pointer v is converted as it is
// rather than through the value it points to.
func opaquePointer(v any) bool {
	switch v.(type) {
	case *ir.OrderedMap, *big.Int, *big.Float, Enumerator:
		return true
	case encoding.TextMarshaler:
		// only when the pointed to value is not a marshaler itself
		_, ok := reflect.ValueOf(v).Elem().Interface().(encoding.TextMarshaler)
		return !ok
	}
	return false
}

func isScalarLike(v any) bool {
	switch v.(type) {
	case bool, string, time.Time, time.Duration, uuid.UUID, []byte, encoding.TextMarshaler:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool:
		return true
	}
	return false
}

func (e *encoder) scalar(v any, meta *format.Metadata, path string, inFlow bool) (*ir.Node, error) {
	sv, err := e.cfg.schema.EmitScalar(v)
	if err != nil {
		return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
	}
	n := &ir.Node{Kind: ir.ScalarKind, Value: sv.Value, Tag: sv.Tag, ScalarStyle: sv.Style}
	if meta == nil {
		return n, nil
	}
	if meta.ScalarStyle != ir.ScalarAny {
		n.ScalarStyle = meta.ScalarStyle
	}
	if inFlow || !meta.HasComments() {
		return n, nil
	}
	n.HeadComment = format.CommentLines(meta.PreComment)
	n.FootComment = format.CommentLines(meta.PostComment)
	if meta.Comment != "" {
		if n.ScalarStyle.IsMultiLine() {
			e.warn(InlineCommentMultiline, path, fmt.Sprintf("inline comment %q dropped on %s scalar", meta.Comment, n.ScalarStyle))
		} else {
			n.LineComment = format.CommentLines(meta.Comment)
		}
	}
	return n, nil
}

// collection applies metadata shared by mappings and sequences and reports
// whether the children are inside a flow collection.
func (e *encoder) collection(n *ir.Node, meta *format.Metadata, path string, inFlow bool) bool {
	if meta != nil {
		if meta.CollectionStyle != ir.CollectionAny {
			n.CollectionStyle = meta.CollectionStyle
		}
		if meta.HasComments() && !inFlow {
			e.warn(CommentOnCollection, path, "comments on a collection are dropped, attach them to its items")
		}
	}
	return inFlow || n.CollectionStyle == ir.Flow
}

func (e *encoder) sequence(items []any, meta *format.Metadata, path string, depth int, inFlow bool) (*ir.Node, error) {
	sv, err := e.cfg.schema.EmitSequence(items)
	if err != nil {
		return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
	}
	n := &ir.Node{Kind: ir.SequenceKind, Tag: sv.Tag, CollectionStyle: sv.Style}
	flow := e.collection(n, meta, path, inFlow)
	n.Values = make([]*ir.Node, 0, len(sv.Values))
	for i, item := range sv.Values {
		child, err := e.node(item, fmt.Sprintf("%s[%d]", path, i), depth-1, flow)
		if err != nil {
			return nil, err
		}
		n.Values = append(n.Values, child)
	}
	return n, nil
}

func (e *encoder) mapping(m *ir.OrderedMap, meta *format.Metadata, path string, depth int, inFlow bool) (*ir.Node, error) {
	if m == nil {
		m = ir.NewOrderedMap()
	}
	mv, err := e.cfg.schema.EmitMap(m)
	if err != nil {
		return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
	}
	n := &ir.Node{Kind: ir.MappingKind, Tag: mv.Tag, CollectionStyle: mv.Style}
	flow := e.collection(n, meta, path, inFlow)
	var rangeErr error
	mv.Values.Range(func(k, v any) bool {
		childPath := keyPath(path, k)
		kn, err := e.node(k, childPath, depth-1, flow)
		if err != nil {
			rangeErr = err
			return false
		}
		vn, err := e.node(v, childPath, depth-1, flow)
		if err != nil {
			rangeErr = err
			return false
		}
		// comments around a value belong before and after the whole entry
		kn.HeadComment = joinComment(kn.HeadComment, vn.HeadComment)
		kn.FootComment = joinComment(kn.FootComment, vn.FootComment)
		vn.HeadComment, vn.FootComment = "", ""
		n.Fields = append(n.Fields, kn)
		n.Values = append(n.Values, vn)
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return n, nil
}

// enumerate reads the members of x. A failing member read, including a
// panic, is replaced by the error text. When listing the members fails the
// error is returned, already reported, for use as a placeholder.
func (e *encoder) enumerate(x Enumerator, path string) (*ir.OrderedMap, error) {
	members, err := func() (ms []Member, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return x.Members()
	}()
	if err != nil {
		mae := &MemberAccessError{FieldPath: path, Member: "*", Err: err}
		e.warn(MemberAccess, path, mae.Error())
		return nil, mae
	}
	return e.members(members, path), nil
}

func (e *encoder) members(members []Member, path string) *ir.OrderedMap {
	res := ir.NewOrderedMap()
	for _, m := range members {
		v, err := readMember(m)
		if err != nil {
			mae := &MemberAccessError{FieldPath: keyPath(path, m.Name), Member: m.Name, Err: err}
			e.warn(MemberAccess, mae.FieldPath, mae.Error())
			v = mae.Error()
		}
		res.Set(m.Name, v)
	}
	return res
}

func readMember(m Member) (v any, err error) {
	if m.Get == nil {
		return nil, fmt.Errorf("no getter")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return m.Get()
}

// sortedMap copies a Go map into an OrderedMap with keys in a stable
// order: numbers numerically, then everything else by its text.
func sortedMap(val reflect.Value) *ir.OrderedMap {
	keys := val.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return keyLess(keys[i].Interface(), keys[j].Interface())
	})
	res := ir.NewOrderedMap()
	for _, k := range keys {
		res.Set(k.Interface(), val.MapIndex(k).Interface())
	}
	return res
}

func keyLess(a, b any) bool {
	an, aok := numeric.Normalize(a)
	bn, bok := numeric.Normalize(b)
	if aok && bok {
		if af, bf, ok := bigFloats(an, bn); ok {
			return af.Cmp(bf) < 0
		}
	}
	if aok != bok {
		return aok
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func bigFloats(a, b any) (*big.Float, *big.Float, bool) {
	af, aok := toBigFloat(a)
	bf, bok := toBigFloat(b)
	return af, bf, aok && bok
}

func toBigFloat(v any) (*big.Float, bool) {
	switch x := v.(type) {
	case int64:
		return new(big.Float).SetInt64(x), true
	case uint64:
		return new(big.Float).SetUint64(x), true
	case float64:
		if math.IsNaN(x) {
			return nil, false
		}
		return big.NewFloat(x), true
	case float32:
		if math.IsNaN(float64(x)) {
			return nil, false
		}
		return big.NewFloat(float64(x)), true
	case *big.Int:
		return new(big.Float).SetInt(x), true
	case *big.Float:
		return x, true
	}
	return nil, false
}

func keyPath(path string, k any) string {
	k, _ = format.Unwrap(k)
	ks := fmt.Sprint(k)
	if ir.IsNullKey(k) {
		ks = "null"
	}
	if path == "" {
		return ks
	}
	return path + "." + ks
}

func displayPath(p string) string {
	if p == "" {
		return "<root>"
	}
	return strings.TrimPrefix(p, ".")
}
