package triekv

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

// fingerprintEntry is the canonical form one entry is hashed in.
type fingerprintEntry struct {
	Key   string
	Value interface{}
}

// Fingerprint returns a digest of the tree's contents: the blake2b-256
// hash of its entries serialized in key order, base64 URL-encoded.
// Two trees with equal contents have equal fingerprints even when they
// were built by different mutation histories and share no nodes.
// Values must be JSON-serializable.
func (t Tree) Fingerprint() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	err := t.Iter(func(key string, value interface{}) error {
		if err := enc.Encode(fingerprintEntry{Key: key, Value: value}); err != nil {
			return fmt.Errorf("encode %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	hash := blake2b.Sum256(buf.Bytes())
	return base64.RawURLEncoding.EncodeToString(hash[:]), nil
}
