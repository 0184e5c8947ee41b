package event

import "encoding/json"

// DecodePayload extracts a typed payload. In-process publishers pass the struct
// (or a pointer to it) directly; anything else goes through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
