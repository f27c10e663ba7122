package kv

import (
	"iter"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case. Pairs are kept in insertion order, duplicates are
// allowed and keys are compared exactly, so "User-Agent" and "user-agent" are different keys.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add appends a new pair of key and value.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns the first value and a bool, indicating whether the value was found. If it
// wasn't, it'll be an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns an iterator over all values of the key in order of their insertion.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if pair.Key == key && !yield(pair.Value) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all the pairs in order of their insertion.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clone creates a deep copy, which may be used later or stored somewhere safely.
func (s *Storage) Clone() *Storage {
	if len(s.pairs) == 0 {
		return New()
	}

	pairs := make([]Pair, len(s.pairs))
	copy(pairs, s.pairs)

	return &Storage{pairs: pairs}
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}
