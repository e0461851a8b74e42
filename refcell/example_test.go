package refcell_test

import (
	"fmt"

	"github.com/gostdlib/cells/refcell"
)

// The record binding is never reassigned and no field is assigned directly;
// every read and write goes through a scoped borrow.
func Example() {
	a := refcell.DefaultImmutable()

	r := a.SpecialNoCopy.Borrow()
	fmt.Println(string(r.Value()))
	r.Release()

	a.Special.Update(func(v *int) { *v += 1 })
	fmt.Println(a.Special.Take())

	// Output:
	// hi
	// 43
}

func ExampleRefCell_TryBorrowMut() {
	c := refcell.New("shared")

	r := c.Borrow()
	defer r.Release()

	if _, err := c.TryBorrowMut(); err != nil {
		fmt.Println(err)
	}
	// Output: refcell: BorrowMut rejected: value has 1 outstanding shared borrow(s)
}
