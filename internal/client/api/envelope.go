package api

import "encoding/json"

// Unwrap extracts the useful payload from a backend response, whichever of
// the three accepted envelope shapes it arrived in: {success, data}, {data},
// or a bare value. The success+data shape is checked first, then a bare data
// key, then the whole value is treated as the payload.
//
// No validation happens here; callers shape-check the unwrapped payload
// when decoding it.
func Unwrap(raw json.RawMessage) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// bare array, string, number, ...
		return raw
	}

	if _, ok := envelope["success"]; ok {
		if data, ok := envelope["data"]; ok {
			return data
		}
	}
	if data, ok := envelope["data"]; ok {
		return data
	}
	return raw
}
