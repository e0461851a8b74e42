// This program must not compile: Get requires a Duplicable element type and
// []byte is not one. The cell package's compile tests build this directory
// and assert failure.
package main

import (
	"fmt"

	"github.com/gostdlib/cells/cell"
)

func main() {
	a := cell.DefaultImmutable()
	fmt.Println(cell.Get(&a.SpecialNoCopy))
}
