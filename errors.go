package packer

import "fmt"

// BuildErr reports a broken build-time payload configuration, like an unset environment variable
// or a source file that cannot be embedded. A package whose generation failed this way must not be built.
type BuildErr struct {
	Reason string
}

// Error returns the reason the payloads could not be embedded.
func (e *BuildErr) Error() string {
	return e.Reason
}

// NewBuildErr returns a BuildErr with a formatted reason.
func NewBuildErr(format string, a ...interface{}) *BuildErr {
	return &BuildErr{Reason: fmt.Sprintf(format, a...)}
}
