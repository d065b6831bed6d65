package packer

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload_Bytes(t *testing.T) {
	p := Payload([]byte{0x01, 0x02, 0x03, 0x04})

	first := p.Bytes()
	second := p.Bytes()
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, first)
	assert.Equal(t, first, second)

	t.Run("copies are independent", func(t *testing.T) {
		first[0] = 0xff
		assert.Equal(t, byte(0x02), second[1])
		assert.Equal(t, byte(0x01), second[0])
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, p.Bytes())
	})

	t.Run("no shared backing array", func(t *testing.T) {
		a, b := p.Bytes(), p.Bytes()
		assert.NotSame(t, &a[0], &b[0])
	})
}

func TestPayload_Empty(t *testing.T) {
	p := Payload("")

	data := p.Bytes()
	assert.NotNil(t, data)
	assert.Len(t, data, 0)
	assert.Zero(t, p.Len())
}

func TestPayload_Len(t *testing.T) {
	assert.Equal(t, 3, Payload("abc").Len())
	assert.Equal(t, 3, len(Payload("abc").Bytes()))

	binary := Payload([]byte{0, 0, 0, 0, 0})
	assert.Equal(t, 5, binary.Len())
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, binary.Bytes())
}

func TestPayload_Concurrent(t *testing.T) {
	p := Payload("concurrent payload")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				b := p.Bytes()
				b[0] = byte(i)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "concurrent payload", string(p.Bytes()))
}

func TestBuildErr(t *testing.T) {
	var err error = NewBuildErr("environment variable %q not set", "DATA_PATH")
	assert.EqualError(t, err, `environment variable "DATA_PATH" not set`)

	var buildErr *BuildErr
	assert.True(t, errors.As(fmt.Errorf("accessor %q: %w", "GetData", err), &buildErr))
	assert.Equal(t, `environment variable "DATA_PATH" not set`, buildErr.Reason)
}
