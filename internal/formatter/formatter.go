package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcncl/cfgmerge/internal/models"
)

// DefaultIndent is the number of spaces used per nesting level.
const DefaultIndent = 2

// Formatter is responsible for rendering JSON values as strict JSON text
type Formatter struct {
	Indent int
}

// NewFormatter creates a new Formatter instance.
func NewFormatter(indent int) *Formatter {
	return &Formatter{Indent: indent}
}

// Format renders v as indented JSON followed by a newline. Object keys keep
// their order. Non-ASCII characters, including U+2028 and U+2029, are
// written literally and <, > and & are left unescaped. A non-positive Indent
// renders with DefaultIndent.
func (f *Formatter) Format(v models.JSONValue) ([]byte, error) {
	raw, err := Compact(v)
	if err != nil {
		return nil, err
	}

	indent := f.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Compact renders v as JSON with no insignificant whitespace.
func Compact(v models.JSONValue) ([]byte, error) {
	e := &encoder{}
	e.enc = json.NewEncoder(&e.scratch)
	e.enc.SetEscapeHTML(false)
	if err := e.write(v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	enc     *json.Encoder
}

func (e *encoder) write(v models.JSONValue) error {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case bool:
		if t {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case *models.JSONObject:
		if t == nil {
			e.buf.WriteString("null")
			return nil
		}
		e.buf.WriteByte('{')
		for pair, first := t.Oldest(), true; pair != nil; pair, first = pair.Next(), false {
			if !first {
				e.buf.WriteByte(',')
			}
			if err := e.scalar(pair.Key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if err := e.write(pair.Value); err != nil {
				return err
			}
		}
		e.buf.WriteByte('}')
	case models.JSONArray:
		e.buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.write(item); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	default:
		// Strings, json.Number and anything built outside the parser.
		return e.scalar(t)
	}
	return nil
}

// scalar encodes v with encoding/json, minus the newline Encode appends.
func (e *encoder) scalar(v interface{}) error {
	e.scratch.Reset()
	if err := e.enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %T: %w", v, err)
	}
	e.buf.Write(unescapeLineSeparators(bytes.TrimSuffix(e.scratch.Bytes(), []byte("\n"))))
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always writes back into the raw characters. Escape sequences are stepped
// over whole, so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
