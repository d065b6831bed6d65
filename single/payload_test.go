package single

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maja42/packer/embedding"
	"github.com/maja42/packer/internal"
)

func TestGetData(t *testing.T) {
	first := GetData()
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, first)

	second := GetData()
	assert.Equal(t, first, second)
	assert.NotSame(t, &first[0], &second[0])

	first[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, GetData())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, second)
}

func TestGetData_matchesSource(t *testing.T) {
	source, err := os.ReadFile("data.bin")
	require.NoError(t, err)

	assert.Equal(t, source, GetData())
	assert.Len(t, GetData(), GetDataSize)
	assert.Equal(t, len(source), GetDataSize)
}

func TestGenerated_upToDate(t *testing.T) {
	m, err := embedding.LoadManifest(embedding.DefaultManifest)
	require.NoError(t, err)

	path, err := filepath.Abs("data.bin")
	require.NoError(t, err)
	lookup := func(string) (string, bool) { return path, true }

	assert.NoError(t, embedding.Check(".", m, lookup, t.Logf))

	src, err := os.ReadFile(internal.SourceFile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "DO NOT EDIT")
}
