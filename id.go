package textgui

import "hash/fnv"

// ID uniquely identifies a field within a Toolkit.
// IDs are stable across frames and runs for the same name.
type ID uint64

// IDOf generates a stable ID from a field name.
func IDOf(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return ID(h.Sum64())
}
