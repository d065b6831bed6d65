// Package packer provides the run-time side of build-time payload embedding.
//
// Payloads are compiled into the executable with //go:embed by code that the
// embedder generates (see package embedding and cmd/embedder).
// Reading a payload never touches the filesystem.
package packer

// Payload represents a byte sequence embedded into the executable.
// The content is fixed at build time and never changes for the lifetime of the process.
type Payload string

// Bytes returns a copy of the payload.
// Every call allocates a new slice that is owned by the caller; modifying it does not
// affect the payload or the result of other calls.
// The result is never nil, an empty payload yields a zero-length slice.
func (p Payload) Bytes() []byte {
	b := make([]byte, len(p))
	copy(b, p)
	return b
}

// Len returns the size of the payload in bytes.
func (p Payload) Len() int {
	return len(p)
}
