package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/yayaml-go/yayaml/format"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/numeric"
)

// jsonReady replaces values JSON cannot express as such: ordered maps keep
// their order, big numbers stay numbers and non finite floats become
// their YAML spelling.
func jsonReady(v any) any {
	v, _ = format.Unwrap(v)
	switch x := v.(type) {
	case *ir.OrderedMap:
		res := make(orderedJSON, 0, x.Len())
		x.Range(func(k, v any) bool {
			res = append(res, ir.Entry{Key: jsonKey(k), Value: jsonReady(v)})
			return true
		})
		return res
	case []any:
		res := make([]any, len(x))
		for i, item := range x {
			res[i] = jsonReady(item)
		}
		return res
	case *big.Int:
		return json.Number(x.String())
	case *big.Float:
		return json.Number(x.Text('g', -1))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return numeric.FormatFloatBits(x, 64)
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return numeric.FormatFloatBits(float64(x), 32)
		}
	}
	return v
}

func jsonKey(k any) string {
	k, _ = format.Unwrap(k)
	switch x := k.(type) {
	case string:
		return x
	case *ir.OrderedMap, []any:
		d, err := json.Marshal(jsonReady(x))
		if err == nil {
			return string(d)
		}
	}
	if ir.IsNullKey(k) {
		return "null"
	}
	return fmt.Sprint(k)
}

// orderedJSON is a JSON object written in entry order. Keys are strings.
type orderedJSON []ir.Entry

func (o orderedJSON) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// readJSON decodes a stream of JSON values. Objects keep their key order
// and numbers keep their precision.
func readJSON(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var res []any
	for {
		v, err := jsonValue(dec)
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
}

func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	v, err := jsonToken(dec, tok)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return v, err
}

func jsonToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := ir.NewOrderedMap()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", kt)
				}
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(k, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			items := []any{}
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return items, nil
		}
		return nil, fmt.Errorf("unexpected %v", t)
	case json.Number:
		return jsonNumber(t)
	}
	return tok, nil
}

func jsonNumber(n json.Number) (any, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return strconv.ParseFloat(s, 64)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bad number %q", s)
	}
	return b, nil
}
