//go:build js && wasm && pair

package main

import "github.com/maja42/packer/internal/exports"

var table = exports.Pair
