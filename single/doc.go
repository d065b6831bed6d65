// Package single embeds one payload, selected at build time by the DATA_PATH environment variable.
//
// Run "go generate" with DATA_PATH pointing to the payload source to replace the embedded data.
package single

//go:generate go run github.com/maja42/packer/cmd/embedder
