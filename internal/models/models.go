package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSONValue is a generic type to represent any JSON value.
// Concrete types are nil, bool, json.Number, string, JSONArray and *JSONObject.
type JSONValue interface{}

// JSONObject is a JSON object that remembers the order its keys were inserted in.
type JSONObject = orderedmap.OrderedMap[string, JSONValue]

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// NewJSONObject returns an empty object.
func NewJSONObject() *JSONObject {
	return orderedmap.New[string, JSONValue]()
}

// Kind identifies which JSON variant a JSONValue holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf classifies v. Values built outside the parser (float64, []interface{}
// and so on) report KindInvalid.
func KindOf(v JSONValue) Kind {
	switch t := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case JSONArray:
		return KindArray
	case *JSONObject:
		if t == nil {
			return KindNull
		}
		return KindObject
	default:
		return KindInvalid
	}
}

// IsObject reports whether v is a non-nil *JSONObject.
func IsObject(v JSONValue) bool {
	return KindOf(v) == KindObject
}

// IsArray reports whether v is a JSONArray.
func IsArray(v JSONValue) bool {
	return KindOf(v) == KindArray
}
