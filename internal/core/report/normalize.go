package report

import (
	"regexp"
	"sort"
	"strconv"
)

var numericKeyRe = regexp.MustCompile(`^\d+$`)

// Normalized is the shape-independent view of an endpoint response: an
// ordered row sequence plus the page count when the payload reported one.
// TotalPages 0 means the payload carried no page count.
type Normalized struct {
	Rows       []any
	TotalPages int
}

// Normalize resolves any of the known response shapes into an ordered row
// sequence. Unrecognized shapes degrade to an empty sequence with
// TotalPages 1; callers must treat empty as "no data", never as an error.
//
// Decision policy, first match wins:
//  1. nil payload
//  2. object with a non-empty "items" array (numeric-key container or
//     plain row array)
//  3. array payload (numeric-key container first element, nested row
//     array, or a plain row array)
//  4. object payload ("firmas"/"totalPaginas" pair, or numeric-key object)
//  5. fallback: empty
func Normalize(raw any) Normalized {
	if raw == nil {
		return Normalized{Rows: []any{}, TotalPages: 1}
	}

	if obj, ok := raw.(map[string]any); ok {
		if items, ok := obj["items"].([]any); ok && len(items) > 0 {
			if first, ok := items[0].(map[string]any); ok {
				if rows, ok := numericKeyRows(first); ok {
					return Normalized{Rows: rows, TotalPages: pageCount(obj, "totalPages", "total_paginas")}
				}
			}
			if allObjects(items) {
				return Normalized{Rows: items, TotalPages: pageCount(obj, "totalPages", "total_paginas")}
			}
		}
	}

	if arr, ok := raw.([]any); ok && len(arr) > 0 {
		switch first := arr[0].(type) {
		case map[string]any:
			if rows, ok := numericKeyRows(first); ok {
				total := pageCount(first, "totalPages")
				if total == 0 && len(arr) > 1 {
					if meta, ok := arr[1].(map[string]any); ok {
						total = pageCount(meta, "totalPages")
					}
				}
				return Normalized{Rows: rows, TotalPages: total}
			}
			return Normalized{Rows: arr}
		case []any:
			total := 0
			if len(arr) > 1 {
				if meta, ok := arr[1].(map[string]any); ok {
					total = pageCount(meta, "totalPages")
				}
			}
			return Normalized{Rows: first, TotalPages: total}
		}
	}

	if obj, ok := raw.(map[string]any); ok {
		if firmas, ok := obj["firmas"].([]any); ok {
			return Normalized{Rows: firmas, TotalPages: pageCount(obj, "totalPaginas")}
		}
		if rows, ok := numericKeyRows(obj); ok {
			return Normalized{Rows: rows, TotalPages: pageCount(obj, "totalPages")}
		}
	}

	return Normalized{Rows: []any{}, TotalPages: 1}
}

// numericKeyRows extracts rows from a container object keyed by numeric
// strings ("0", "1", ...), ordered numerically.
func numericKeyRows(obj map[string]any) ([]any, bool) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if numericKeyRe.MatchString(k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, false
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	rows := make([]any, len(keys))
	for i, k := range keys {
		rows[i] = obj[k]
	}
	return rows, true
}

func allObjects(items []any) bool {
	for _, it := range items {
		if _, ok := it.(map[string]any); !ok {
			return false
		}
	}
	return true
}

// pageCount reads the first present page-count key, tolerating the
// numeric types encoding/json produces.
func pageCount(obj map[string]any, keys ...string) int {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case string:
			if parsed, err := strconv.Atoi(n); err == nil {
				return parsed
			}
		}
	}
	return 0
}
