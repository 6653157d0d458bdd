package utils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-site-keeper/models"
)

// Checksum returns the hex encoded BLAKE2b-256 digest of the JSON form of
// cfg. encoding/json writes struct fields in declaration order and map keys
// sorted, so equal configurations always produce equal checksums.
func Checksum(cfg models.Configuration) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("error encoding configuration for checksum: %w", err)
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
