//go:build pair

package main

/*
#include <stdlib.h>
*/
import "C"

import "github.com/maja42/packer/pair"

//export getData
func getData(size *C.size_t) *C.uchar {
	return copyOut(pair.GetData(), size)
}

//export getData2
func getData2(size *C.size_t) *C.uchar {
	return copyOut(pair.GetData2(), size)
}
