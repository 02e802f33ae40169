package response

import "encoding/json"

// jsonMarshal wraps encoding/json.Marshal.
func jsonMarshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
