package parser

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mcncl/cfgmerge/internal/errors"
	"github.com/mcncl/cfgmerge/internal/jsonc"
	"github.com/mcncl/cfgmerge/internal/models"
)

// MaxDepth is the deepest array/object nesting Parse accepts. It matches the
// limit encoding/json applies to Unmarshal.
const MaxDepth = 10000

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes exactly one strict JSON value from reader. Objects keep the
// order their keys appear in; numbers are kept as json.Number.
func Parse(reader io.Reader) (models.JSONValue, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	root, err := decodeValue(decoder, 0)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, wrapDecodeError(decoder, err)
	}

	// Anything but EOF after the root value is either a second value or garbage.
	if _, err := decoder.Token(); err == nil {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return nil, wrapDecodeError(decoder, err)
	}

	return root, nil
}

func decodeValue(decoder *json.Decoder, depth int) (models.JSONValue, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// Primitives (string, json.Number, bool, nil) are returned as is
		return tok, nil
	}

	if depth >= MaxDepth {
		return nil, errTooDeep
	}

	switch delim {
	case '{':
		obj := models.NewJSONObject()
		for decoder.More() {
			keyTok, err := decoder.Token()
			if err != nil {
				return nil, unexpectedEOF(err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, not string", keyTok)
			}
			value, err := decodeValue(decoder, depth+1)
			if err != nil {
				return nil, unexpectedEOF(err)
			}
			obj.Set(key, value)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, unexpectedEOF(err)
		}
		return obj, nil
	case '[':
		arr := models.JSONArray{}
		for decoder.More() {
			value, err := decodeValue(decoder, depth+1)
			if err != nil {
				return nil, unexpectedEOF(err)
			}
			arr = append(arr, value)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, unexpectedEOF(err)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

var errTooDeep = stderrors.New("too deep")

// unexpectedEOF reports running out of input inside an array or object.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func wrapDecodeError(decoder *json.Decoder, err error) error {
	if stderrors.Is(err, errTooDeep) {
		return errors.NewParsingError(
			fmt.Sprintf("nesting deeper than %d at offset %d", MaxDepth, decoder.InputOffset()),
			errors.ErrTooDeep,
		)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d: %s", syntaxError.Offset, syntaxError.Error()),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError(
			fmt.Sprintf("unexpected end of input at offset %d", decoder.InputOffset()),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError(
		fmt.Sprintf("failed to decode JSON at offset %d: %v", decoder.InputOffset(), err),
		errors.ErrInvalidJSON,
	)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.JSONValue, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses strict JSON from a file path
func ParseFile(filePath string) (models.JSONValue, error) {
	data, err := ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return parseDocument(filePath, data)
}

// LoadJSONC reads a JSON-with-comments file, strips it and parses the result.
func LoadJSONC(filePath string, opts jsonc.Options) (models.JSONValue, error) {
	data, err := ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return parseDocument(filePath, jsonc.StripWithOptions(data, opts))
}

// ReadFile reads the whole of filePath, dropping a leading UTF-8 byte order
// mark. A missing file is reported with errors.ErrFileNotFound.
func ReadFile(filePath string) ([]byte, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("%s not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

func parseDocument(filePath string, data []byte) (models.JSONValue, error) {
	value, err := Parse(bytes.NewReader(data))
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, errors.NewParsingError(fmt.Sprintf("%s: %s", filePath, appErr.Message), appErr.Err)
		}
		return nil, err
	}
	slog.Debug("Parsed document", "path", filePath, "kind", models.KindOf(value).String(), "bytes", len(data))
	return value, nil
}
