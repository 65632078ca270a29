package document

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	Employees   = "employees"
	Departments = "departments"
)

// Collections lists the resources the Data Store serves.
var Collections = []string{Employees, Departments}

// Document is a schemaless JSON object stored in a collection.
type Document map[string]any

// ID returns the "id" field in string form, or "" when absent.
func (d Document) ID() string {
	return IDString(d["id"])
}

// IDString renders a JSON id value (string or number) as a string.
func IDString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	}
	return fmt.Sprint(v)
}

// Clone deep copies the document so callers never share nested maps or slices.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return cloneValue(map[string]any(d)).(map[string]any)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Document:
		return Document(cloneValue(map[string]any(val)).(map[string]any))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}
