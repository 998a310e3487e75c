package test

import (
	"encoding/json"
	"os"
	"testing"
)

// ReadJSONFixture reads a filename into a map, and fails the test if it is
// unable to open or parse the file.
func ReadJSONFixture(t *testing.T, filename string) map[string]interface{} {
	t.Helper()
	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read %s: %s", filename, err)
	}
	return UnmarshalJSON(t, b)
}

// UnmarshalJSON unmarshals a byte-slice to a map.
func UnmarshalJSON(t *testing.T, b []byte) map[string]interface{} {
	t.Helper()
	result := map[string]interface{}{}
	if err := json.Unmarshal(b, &result); err != nil {
		t.Fatalf("failed to unmarshal %q: %s", b, err)
	}
	return result
}

// RequestBody decodes the JSON body of a request received by an API server,
// failing the test if no body was sent.
func RequestBody(t *testing.T, r *Request) map[string]interface{} {
	t.Helper()
	if len(r.Body) == 0 {
		t.Fatalf("no body sent with %s %s", r.Method, r.Path)
	}
	return UnmarshalJSON(t, r.Body)
}
