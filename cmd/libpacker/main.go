// Command libpacker exposes the embedded payloads to C hosts.
//
// Build with:
//
//	go build -buildmode=c-shared -o libpacker.so ./cmd/libpacker
//
// Every accessor returns a newly allocated copy and stores its length in *size.
// The host owns the copy and releases it with freeData.
// Build with "-tags pair" for the two-payload variant.
package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// copyOut returns a C-allocated copy of data.
func copyOut(data []byte, size *C.size_t) *C.uchar {
	if size != nil {
		*size = C.size_t(len(data))
	}
	// malloc(0) may return NULL, which hosts would mistake for a failure
	p := C.malloc(C.size_t(len(data) + 1))
	if len(data) > 0 {
		copy(unsafe.Slice((*byte)(p), len(data)), data)
	}
	return (*C.uchar)(p)
}

//export freeData
func freeData(p *C.uchar) {
	C.free(unsafe.Pointer(p))
}

func main() {}
