package eval

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition describes a schema built from expressions on top of a named
// base schema.
//
//	name: secrets
//	base: yaml12
//	tags:
//	  "!upper": upper(value)
//	  "!csv": split(value, ",")
//	scalar: 'tag == "!secret" ? "***" : base(scalar)'
//
// Each expression sees value, tag and style of the scalar, and the scalar
// itself as scalar. base(scalar) resolves it through the base schema
// unchanged, parse(text) resolves text as a plain untagged scalar. Tag
// expressions handle scalars carrying the tag, the scalar expression
// every other scalar.
type Definition struct {
	Name   string            `yaml:"name"`
	Base   string            `yaml:"base"`
	Tags   map[string]string `yaml:"tags"`
	Scalar string            `yaml:"scalar"`
}

// Load decodes a definition. Unknown fields are an error.
func Load(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	def := &Definition{}
	if err := dec.Decode(def); err != nil {
		return nil, fmt.Errorf("loading schema definition: %w", err)
	}
	return def, nil
}

func LoadFile(path string) (*Definition, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
