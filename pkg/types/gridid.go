package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// GridID is a Git-style SHA-1 content hash (20 bytes) of a grid's rows.
type GridID [20]byte

// ComputeGridID hashes content the way git hashes a blob.
func ComputeGridID(content []byte) GridID {
	header := fmt.Sprintf("blob %d\x00", len(content))
	h := sha1.New()
	h.Write([]byte(header))
	h.Write(content)

	var id GridID
	copy(id[:], h.Sum(nil))
	return id
}

// Hex returns the full 40-character hex form.
func (id GridID) Hex() string {
	return hex.EncodeToString(id[:])
}

// Short returns the first 8 hex characters.
func (id GridID) Short() string {
	return id.Hex()[:8]
}

func (id GridID) String() string {
	return id.Hex()
}

// ParseGridID parses the hex form produced by Hex. Case is ignored.
func ParseGridID(hexStr string) (GridID, error) {
	if len(hexStr) != 40 {
		return GridID{}, fmt.Errorf("grid ID must be 40 hex characters, got %d", len(hexStr))
	}

	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return GridID{}, fmt.Errorf("grid ID %q: %w", hexStr, err)
	}

	var id GridID
	copy(id[:], decoded)
	return id, nil
}

// MarshalText encodes the ID as 40 hex characters.
func (id GridID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText decodes a 40-character hex ID.
func (id *GridID) UnmarshalText(text []byte) error {
	parsed, err := ParseGridID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
