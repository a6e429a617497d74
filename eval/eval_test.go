package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/schema"
)

const secrets = `
name: secrets
base: yaml12
tags:
  "!upper": upper(value)
  "!csv": split(value, ",")
  "!doc": tovalue(value)
  "!env": getenv(value)
  "!!int": int(value) * 10
scalar: 'tag == "!secret" ? "***" : base(scalar)'
`

func build(t *testing.T, text string) *schema.Custom {
	t.Helper()
	def, err := Load([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	s, err := def.Build()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDefinitionSchema(t *testing.T) {
	t.Setenv("YAYAML_EVAL_TEST", "found")
	s := build(t, secrets)
	if s.Name() != "secrets" {
		t.Errorf("name %q", s.Name())
	}
	tests := []struct {
		in   ir.ScalarValue
		want any
	}{
		{ir.ScalarValue{Value: "abc", Tag: "!upper", Style: ir.Plain}, "ABC"},
		{ir.ScalarValue{Value: "a,b", Tag: "!csv", Style: ir.Plain}, []any{"a", "b"}},
		{ir.ScalarValue{Value: "[1, x]", Tag: "!doc", Style: ir.DoubleQuoted}, []any{int32(1), "x"}},
		{ir.ScalarValue{Value: "YAYAML_EVAL_TEST", Tag: "!env", Style: ir.Plain}, "found"},
		{ir.ScalarValue{Value: "4", Tag: ir.IntTag, Style: ir.Plain}, 40},
		{ir.ScalarValue{Value: "hunter2", Tag: "!secret", Style: ir.Plain}, "***"},
		{ir.ScalarValue{Value: "12", Style: ir.Plain}, int32(12)},
		{ir.ScalarValue{Value: "true", Style: ir.Plain}, true},
		{ir.ScalarValue{Value: "true", Style: ir.DoubleQuoted}, "true"},
		{ir.ScalarValue{Value: "12", Style: ir.SingleQuoted}, "12"},
		{ir.ScalarValue{Value: "12", Tag: ir.StrTag, Style: ir.Plain}, "12"},
		{ir.ScalarValue{Value: "0.5", Tag: ir.FloatTag, Style: ir.Plain}, 0.5},
	}
	for _, tt := range tests {
		got, err := s.ParseScalar(tt.in)
		if err != nil {
			t.Errorf("%+v: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%+v mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestDispatchTiers(t *testing.T) {
	s := build(t, secrets)
	tests := []struct {
		tag  string
		want schema.Tier
	}{
		{"!upper", schema.TierTag},
		{"!!int", schema.TierTag},
		{"!secret", schema.TierHook},
		{"", schema.TierHook},
	}
	for _, tt := range tests {
		if got := s.Dispatch(schema.OpParseScalar, tt.tag); got != tt.want {
			t.Errorf("Dispatch(%q) = %s, want %s", tt.tag, got, tt.want)
		}
	}
	if got := s.Dispatch(schema.OpParseMap, ""); got != schema.TierBase {
		t.Errorf("maps dispatch to %s", got)
	}
}

func TestTagFailureClassifies(t *testing.T) {
	s := build(t, secrets)
	_, err := s.ParseScalar(ir.ScalarValue{Value: "x", Tag: ir.IntTag, Style: ir.Plain})
	if !errors.Is(err, ir.ErrClassification) {
		t.Errorf("expected classification error, got %v", err)
	}
}

func TestHookKeepsTagContract(t *testing.T) {
	s := build(t, "scalar: 'base(scalar)'\n")
	_, err := s.ParseScalar(ir.ScalarValue{Value: "abc", Tag: ir.IntTag, Style: ir.Plain})
	if !errors.Is(err, ir.ErrClassification) {
		t.Errorf("expected classification error, got %v", err)
	}
	got, err := s.ParseScalar(ir.ScalarValue{Value: "12", Style: ir.Plain})
	if err != nil {
		t.Fatal(err)
	}
	if got != int32(12) {
		t.Errorf("got %#v", got)
	}

	s = build(t, "scalar: 'parse(value)'\n")
	got, err = s.ParseScalar(ir.ScalarValue{Value: "12", Style: ir.SingleQuoted})
	if err != nil {
		t.Fatal(err)
	}
	if got != int32(12) {
		t.Errorf("parse should read text as plain, got %#v", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{"unknown base", Definition{Base: "nope"}},
		{"bad tag expression", Definition{Tags: map[string]string{"!x": "value +"}}},
		{"bad scalar expression", Definition{Scalar: "nosuchfunc(value)"}},
		{"unknown variable", Definition{Scalar: "other"}},
	}
	for _, tt := range tests {
		if _, err := tt.def.Build(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	if _, err := (&Definition{Base: "nope"}).Build(); !errors.Is(err, schema.ErrUnknownSchema) {
		t.Errorf("unknown base: %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	if _, err := Load([]byte("base: core\nscalars: x\n")); err == nil {
		t.Error("expected error for misspelled field")
	}
}

func TestDefaults(t *testing.T) {
	s, err := (&Definition{}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "eval" || s.Base().Name() != schema.Default().Name() {
		t.Errorf("defaults: %s on %s", s.Name(), s.Base().Name())
	}
}

func TestRegister(t *testing.T) {
	if err := Register(Upper()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("re-register: %v", err)
	}
	rev := Func("reverse", func(params ...any) (any, error) {
		r := []rune(params[0].(string))
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r), nil
	}, new(func(string) string))
	if err := Register(rev); err != nil {
		t.Fatal(err)
	}
	if Lookup("reverse") == nil {
		t.Fatal("reverse not found")
	}
	s := build(t, "tags:\n  \"!rev\": reverse(value)\n")
	got, err := s.ParseScalar(ir.ScalarValue{Value: "abc", Tag: "!rev", Style: ir.Plain})
	if err != nil {
		t.Fatal(err)
	}
	if got != "cba" {
		t.Errorf("got %v", got)
	}
}
