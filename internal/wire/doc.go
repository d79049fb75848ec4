// Package wire serializes business-data messages (values, criteria,
// selections, entities) as length-prefixed frames, deterministic CBOR
// or YAML documents. It performs no network I/O.
package wire
