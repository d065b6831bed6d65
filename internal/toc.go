package internal

// TOC (=table of content) lists all payloads of a generated package.
// The order of payloads in the TOC reflects the order of the accessors in the generated source.
type TOC []Entry

// Entry represents a single resolved payload.
type Entry struct {
	Accessor string // Name of the generated accessor function
	File     string // Name of the embedded copy, relative to the package directory
	Size     int64  // Payload size in bytes
}

// Size returns the combined size of all payloads.
func (t TOC) Size() int64 {
	var size int64
	for _, e := range t {
		size += e.Size
	}
	return size
}
