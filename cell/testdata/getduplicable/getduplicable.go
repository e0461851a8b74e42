// This program must compile: Get is defined for Duplicable element types.
// The cell package's compile tests build this directory and assert success.
package main

import (
	"fmt"

	"github.com/gostdlib/cells/cell"
)

func main() {
	a := cell.DefaultImmutable()
	fmt.Println(cell.Get(&a.Special))
}
