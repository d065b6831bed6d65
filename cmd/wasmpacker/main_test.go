//go:build js && wasm && !pair

package main

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, fn js.Func) []byte {
	v := fn.Invoke()
	require.True(t, v.InstanceOf(js.Global().Get("Uint8Array")))
	data := make([]byte, v.Length())
	js.CopyBytesToGo(data, v)
	return data
}

func TestExport(t *testing.T) {
	require.Len(t, table, 1)
	assert.Equal(t, "getData", table[0].Name)

	fn := export(table[0].Get)
	defer fn.Release()

	first := call(t, fn)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, first)

	first[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, call(t, fn))
}

func TestExport_empty(t *testing.T) {
	fn := export(func() []byte { return []byte{} })
	defer fn.Release()

	assert.Empty(t, call(t, fn))
}
