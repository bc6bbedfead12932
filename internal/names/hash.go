package names

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// HashSchema returns a 64-bit digest of a schema mapping.
//
// The mapping is re-encoded as canonical JSON (object keys sorted by the
// encoder) so that two structurally equal schemas always hash the same,
// regardless of how they were loaded.
func HashSchema(schema map[string]any) (uint64, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return 0, fmt.Errorf("hashing schema: %w", err)
	}

	return xxhash.Sum64(data), nil
}
