package exports

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when snapshotPayload format changes
const snapshotSchemaVersion uint16 = 1

// snapshotPayload is the on-disk layout of a serialized export graph. The
// upstream compiler stage writes one per module; the declaration emitter
// reads it back.
type snapshotPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Memory64 bool
	Elements []Element
	Exports  []Member
}

// EncodeSnapshot serializes the graph for hand-off between pipeline stages.
func EncodeSnapshot(g *Graph) ([]byte, error) {
	payload := snapshotPayload{
		Schema:   snapshotSchemaVersion,
		Memory64: g.Memory64,
		Elements: g.elems,
		Exports:  g.Exports,
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return nil, fmt.Errorf("encode graph snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot deserializes a graph previously produced by EncodeSnapshot.
// A schema mismatch is a caller-facing error, not an invariant violation.
func DecodeSnapshot(data []byte) (*Graph, error) {
	var payload snapshotPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode graph snapshot: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("graph snapshot schema %d, expected %d", payload.Schema, snapshotSchemaVersion)
	}
	g := &Graph{
		Memory64: payload.Memory64,
		elems:    payload.Elements,
		Exports:  payload.Exports,
	}
	if len(g.elems) == 0 {
		g.elems = append(g.elems, Element{})
	}
	return g, nil
}

// StoreSnapshot writes the graph to path, replacing it atomically.
func StoreSnapshot(path string, g *Graph) error {
	data, err := EncodeSnapshot(g)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSnapshot reads a graph snapshot from path.
func LoadSnapshot(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(data)
}
