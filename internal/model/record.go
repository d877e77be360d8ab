package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one flat JSON object returned by the backend for some
// resource. The client never defines resource schemas statically;
// it discovers them from the records it receives. Values carry
// whatever encoding/json produced: string, float64, bool or nil.
type Record map[string]any

// String returns the value under key rendered as a string. Nil
// values become the empty string. Numbers are rendered without a
// trailing ".0" when they are whole.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Number returns the value under key as a float64. String values
// are not parsed here; callers that need coercion use the schema
// package. The second result reports whether a numeric value was
// present.
func (r Record) Number(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Clone returns a shallow copy of the record. Form drafts are
// clones so that edits never touch the listed record until the
// server confirms them.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// PrimaryKeyField picks the record's identifier field from an
// ordered column list: the first field whose name ends in "id"
// (case-insensitive), falling back to the first field. Returns ""
// for an empty column list.
func PrimaryKeyField(columns []string) string {
	for _, c := range columns {
		if strings.HasSuffix(strings.ToLower(c), "id") {
			return c
		}
	}
	if len(columns) > 0 {
		return columns[0]
	}
	return ""
}

// PrimaryKey returns the record's key value under the inferred
// primary-key field, rendered as a string so that selection sets
// and URL segments treat numeric and string keys uniformly.
func (r Record) PrimaryKey(columns []string) string {
	return r.String(PrimaryKeyField(columns))
}

// DecodeList parses a backend collection response. It returns the
// records plus the ordered field names of the first record, which
// is what a listing's columns are inferred from. Go maps do not
// preserve key order, so the order is read from the raw JSON
// tokens of the first element. An empty collection yields nil
// columns; views must render an empty state instead of inferring
// anything from it.
func DecodeList(data []byte) ([]Record, []string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	records := make([]Record, 0, len(raw))
	for _, m := range raw {
		var rec Record
		if err := json.Unmarshal(m, &rec); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	if len(raw) == 0 {
		return records, nil, nil
	}
	columns, err := fieldOrder(raw[0])
	if err != nil {
		return nil, nil, err
	}
	return records, columns, nil
}

// fieldOrder walks the token stream of a single JSON object and
// collects its top-level keys in document order.
func fieldOrder(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("model: expected object, got %v", tok)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("model: expected object key, got %v", tok)
		}
		keys = append(keys, key)
		// consume the whole value subtree
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
