package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTOC_Size(t *testing.T) {
	assert.Zero(t, TOC(nil).Size())

	toc := TOC{
		{Accessor: "GetData", File: "data.bin", Size: 3},
		{Accessor: "GetData2", File: "data2.bin", Size: 0},
		{Accessor: "GetData3", File: "data3.bin", Size: 9000},
	}
	assert.Equal(t, int64(9003), toc.Size())
}
