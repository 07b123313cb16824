package storage

import (
	"encoding/json"
	"fmt"
)

// Store wraps a Backend with JSON-encoded values.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) CreateBucket(name []byte) error {
	return s.backend.CreateBucket(name)
}

// PutJSON encodes v and stores it under key.
func (s *Store) PutJSON(bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return s.backend.Put(bucket, key, data)
}

// GetJSON decodes the value under key into v. found is false when the key is absent.
func (s *Store) GetJSON(bucket, key []byte, v any) (found bool, err error) {
	data, err := s.backend.Get(bucket, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return true, nil
}

// Delete removes key from bucket. Deleting a missing key is not an error.
func (s *Store) Delete(bucket, key []byte) error {
	return s.backend.Delete(bucket, key)
}

// EachJSON calls fn for every entry in bucket in key order. decode unmarshals the entry into its argument.
func (s *Store) EachJSON(bucket []byte, fn func(key []byte, decode func(v any) error) error) error {
	return s.backend.ForEach(bucket, func(k, v []byte) error {
		return fn(k, func(dst any) error {
			if err := json.Unmarshal(v, dst); err != nil {
				return fmt.Errorf("failed to decode JSON for key %s: %w", k, err)
			}
			return nil
		})
	})
}

func (s *Store) Close() error {
	return s.backend.Close()
}
