//go:build js && wasm

// Command wasmpacker exposes the embedded payloads to JavaScript.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o packer.wasm ./cmd/wasmpacker
//
// Every export is registered as a global function that returns a new Uint8Array
// holding a copy of the payload. Build with "-tags pair" for the two-payload variant.
package main

import "syscall/js"

func main() {
	for _, e := range table {
		js.Global().Set(e.Name, export(e.Get))
	}
	// the exported functions are only callable while the go program is running
	select {}
}

func export(get func() []byte) js.Func {
	return js.FuncOf(func(js.Value, []js.Value) interface{} {
		data := get()
		arr := js.Global().Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(arr, data)
		return arr
	})
}
