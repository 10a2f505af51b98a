package config

import (
	"encoding/json"
	"hash/fnv"
)

// Hashsum calculates FNV non-cryptographic hash suitable for checking the equality.
// Bytes and strings are hashed as is, other values by their JSON encoding.
func Hashsum(args ...any) ([]byte, error) {
	h := fnv.New128()
	for _, arg := range args {
		var p []byte
		switch v := arg.(type) {
		case []byte:
			p = v
		case string:
			p = []byte(v)
		default:
			s, err := json.Marshal(arg)
			if err != nil {
				return nil, err
			}
			p = s
		}
		if _, err := h.Write(p); err != nil {
			return nil, err
		}
	}
	return h.Sum(nil), nil
}
