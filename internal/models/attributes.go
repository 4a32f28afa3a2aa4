package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Attributes holds JSON keys a record does not model explicitly. They are kept
// verbatim on decode and written back on encode, so a load→mutate→save cycle
// never drops data the builder does not understand.
type Attributes map[string]json.RawMessage

// Clone returns a deep copy of the attribute set.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	cloned := make(Attributes, len(a))
	for key, value := range a {
		cloned[key] = append(json.RawMessage(nil), value...)
	}
	return cloned
}

// Merge returns a copy of a with every key from other written over it.
func (a Attributes) Merge(other Attributes) Attributes {
	if len(other) == 0 {
		return a.Clone()
	}
	merged := a.Clone()
	if merged == nil {
		merged = make(Attributes, len(other))
	}
	for key, value := range other {
		merged[key] = append(json.RawMessage(nil), value...)
	}
	return merged
}

var knownKeysCache sync.Map

// knownKeys maps the case-folded JSON keys declared by a struct type to their
// declared spelling, following embedded structs the way encoding/json
// flattens them. encoding/json matches keys case-insensitively, so lookups
// fold too.
func knownKeys(t reflect.Type) map[string]string {
	if cached, ok := knownKeysCache.Load(t); ok {
		return cached.(map[string]string)
	}

	keys := make(map[string]string)
	collectKeys(t, keys)
	knownKeysCache.Store(t, keys)
	return keys
}

func collectKeys(t reflect.Type, keys map[string]string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name := strings.Split(tag, ",")[0]
		if field.Anonymous && name == "" {
			collectKeys(field.Type, keys)
			continue
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys[strings.ToLower(name)] = name
	}
}

// decodeWithExtra unmarshals data into dst. It returns the top-level keys dst's
// type does not declare, and the declared keys that arrived blank (null, "",
// [], {}, false or 0) keyed by their declared spelling, so the encoder can
// write them back even when the field itself is omitted.
func decodeWithExtra(data []byte, dst interface{}) (extra, blank Attributes, err error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	known := knownKeys(reflect.TypeOf(dst))
	for key, value := range raw {
		name, ok := known[strings.ToLower(key)]
		if !ok {
			if extra == nil {
				extra = make(Attributes)
			}
			extra[key] = value
			continue
		}
		if isBlankJSON(value) {
			if blank == nil {
				blank = make(Attributes)
			}
			blank[name] = value
		}
	}
	return extra, blank, nil
}

// encodeWithExtra marshals src and folds extra and blank into the resulting
// object. Declared keys always win over extras of the same name. A blank key
// is restored when src omitted it, and an explicit null is restored when src
// encoded the field empty.
func encodeWithExtra(src interface{}, extra, blank Attributes) ([]byte, error) {
	data, err := json.Marshal(src)
	if err != nil || (len(extra) == 0 && len(blank) == 0) {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range blank {
		current, exists := merged[key]
		if !exists || (isNullJSON(value) && isBlankJSON(current)) {
			merged[key] = value
		}
	}
	for key, value := range extra {
		if _, exists := merged[key]; !exists {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

func isNullJSON(value json.RawMessage) bool {
	return string(bytes.TrimSpace(value)) == "null"
}

func isBlankJSON(value json.RawMessage) bool {
	var decoded interface{}
	if err := json.Unmarshal(value, &decoded); err != nil {
		return false
	}
	switch v := decoded.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	}
	return false
}
