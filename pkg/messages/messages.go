// Package messages encodes scenes as zstd-compressed flatbuffer snapshots.
package messages

const (
	// MaxSnapshotSize bounds the decompressed size of a snapshot
	MaxSnapshotSize = 64 << 20
)
