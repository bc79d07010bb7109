package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rignaneseleo/groups-for-nomads/schema"
)

// structuralFindings validates the generic document against the schema and
// flattens the resulting cause tree into findings. The schema library checks
// every branch, so the list is complete, never just the first mismatch.
func (v *Validator) structuralFindings(doc any, sch *schema.Schema) []Finding {
	normalized := normalizeValue(doc)

	err := sch.Validate(normalized)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		// The library only returns *ValidationError for invalid documents,
		// but never let an unexpected error vanish.
		return []Finding{{
			Keyword: "schema",
			Message: err.Error(),
		}}
	}

	var out []Finding
	collectLeaves(ve, normalized, &out)
	return out
}

// collectLeaves walks the validation error tree depth-first, emitting one
// finding per leaf cause. Interior nodes only aggregate ("doesn't validate
// with ...") and are skipped.
func collectLeaves(ve *jsonschema.ValidationError, doc any, out *[]Finding) {
	if len(ve.Causes) == 0 {
		keyword := keywordOf(ve.KeywordLocation)
		f := Finding{
			Path:       ve.InstanceLocation,
			SchemaPath: ve.KeywordLocation,
			Keyword:    keyword,
			Message:    ve.Message,
		}
		// For presence-style keywords the instance is a whole container;
		// attaching it as the offending value is noise.
		if keyword != "required" && keyword != "additionalProperties" {
			f.Value = valueAt(doc, ve.InstanceLocation)
		}
		*out = append(*out, f)
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, doc, out)
	}
}

// keywordOf extracts the responsible validator keyword from a keyword
// location pointer, skipping trailing array indices (e.g. ".../anyOf/1").
func keywordOf(keywordLocation string) string {
	segments := strings.Split(keywordLocation, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" {
			continue
		}
		if _, err := strconv.Atoi(seg); err == nil {
			continue
		}
		return seg
	}
	return ""
}

// valueAt resolves a JSON Pointer against the decoded document.
// Returns nil when the pointer cannot be resolved.
func valueAt(doc any, ptr string) any {
	if ptr == "" {
		return doc
	}
	current := doc
	for _, seg := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		seg = strings.ReplaceAll(seg, "~1", "/")
		seg = strings.ReplaceAll(seg, "~0", "~")
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil
			}
			current = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			current = node[i]
		default:
			return nil
		}
	}
	return current
}

// normalizeValue converts a yaml-decoded tree into the representation the
// schema library expects (the shape encoding/json produces): string-keyed
// maps, []any, and json.Number for all numerics. The input is not mutated.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalizeValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = normalizeValue(val)
		}
		return s
	case nil, bool, string, json.Number:
		return t
	case int:
		return json.Number(strconv.Itoa(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case float32:
		return json.Number(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
