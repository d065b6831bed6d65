//go:build !pair

package main

/*
#include <stdlib.h>
*/
import "C"

import "github.com/maja42/packer/single"

//export getData
func getData(size *C.size_t) *C.uchar {
	return copyOut(single.GetData(), size)
}
