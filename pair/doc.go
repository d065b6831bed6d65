// Package pair embeds two independent payloads, selected at build time
// by the DATA_PATH and DATA_PATH_2 environment variables.
package pair

//go:generate go run github.com/maja42/packer/cmd/embedder
