// Package merge deep-merges parsed JSON documents.
//
// Objects are merged key by key, recursively. Every other combination (an
// array, a scalar or null on either side) is resolved by taking the override
// as-is: arrays are never concatenated or merged element-wise.
package merge

import (
	"github.com/mcncl/cfgmerge/internal/errors"
	"github.com/mcncl/cfgmerge/internal/models"
)

// Merge returns override applied on top of base. Neither input is modified;
// every object in the result that came from merging is newly allocated, while
// subtrees taken whole from one side are shared with it.
//
// Result key order is base order, followed by override-only keys in override
// order.
func Merge(base, override models.JSONValue) models.JSONValue {
	baseObj, ok := base.(*models.JSONObject)
	if !ok || baseObj == nil {
		return override
	}
	overrideObj, ok := override.(*models.JSONObject)
	if !ok || overrideObj == nil {
		return override
	}
	return mergeObjects(baseObj, overrideObj)
}

func mergeObjects(base, override *models.JSONObject) *models.JSONObject {
	merged := models.NewJSONObject()
	for pair := base.Oldest(); pair != nil; pair = pair.Next() {
		if value, ok := override.Get(pair.Key); ok {
			merged.Set(pair.Key, Merge(pair.Value, value))
			continue
		}
		merged.Set(pair.Key, pair.Value)
	}
	for pair := override.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := base.Get(pair.Key); !ok {
			merged.Set(pair.Key, pair.Value)
		}
	}
	return merged
}

// All folds docs left to right: All(d0, d1, d2) is Merge(Merge(d0, d1), d2).
// The first document is the base; later documents take precedence.
func All(docs ...models.JSONValue) (models.JSONValue, error) {
	if len(docs) == 0 {
		return nil, errors.NewMergeError("at least one document is required", errors.ErrNoDocuments)
	}
	result := docs[0]
	for _, doc := range docs[1:] {
		result = Merge(result, doc)
	}
	return result, nil
}
