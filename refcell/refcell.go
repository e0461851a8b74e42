/*
Package refcell provides RefCell, a mutable container that hands out scoped
references to its interior value and tracks them at runtime. Like the cell
package it gives a record interior mutability, but instead of moving whole
values in and out, a RefCell lets a caller hold a reference for a span of its
own choosing, enforcing the usual aliasing rule with a counter: any number of
shared (read-only) references may be outstanding at once, or exactly one
exclusive (read-write) reference, never both.

	c := refcell.New(42)

	r := c.Borrow() // shared
	defer r.Release()
	fmt.Println(r.Value())

Borrow and BorrowMut panic with a *BorrowError when the requested access mode
conflicts with references already outstanding. That is a logic error in the
caller, overlapping borrow scopes, not an environmental fault. TryBorrow and
TryBorrowMut surface the same condition as an ordinary error instead, for
callers that want to branch on it:

	if m, err := c.TryBorrowMut(); err == nil {
		defer m.Release()
		*m.Value()++
	}

Every handle must be released, on every exit path of the scope that acquired
it, which in Go means defer. The View and Update helpers bundle the
borrow/defer/release sequence around a callback for the common case.

Replace, Swap and Take each take a transient exclusive borrow of their own, so
they fail the same way BorrowMut does while any reference is outstanding.

The counter is not atomic; a RefCell must not be touched by more than one
goroutine without external synchronization. That restriction is what makes the
plain increment and decrement sound.
*/
package refcell

// exclusive is the counter state while one exclusive reference is outstanding.
// Zero means free; a positive count is the number of outstanding shared
// references.
const exclusive = -1

// RefCell is a mutable container holding exactly one value of type T, guarded
// by a borrow counter. The zero value holds T's zero value and is unborrowed.
// Methods on RefCell must not be called concurrently from multiple goroutines.
type RefCell[T any] struct {
	borrows int
	value   T
}

// New returns a RefCell holding v.
func New[T any](v T) *RefCell[T] {
	return &RefCell[T]{value: v}
}

// TryBorrow acquires a shared reference to the interior value, or returns a
// *BorrowError if an exclusive reference is outstanding.
func (c *RefCell[T]) TryBorrow() (*Ref[T], error) {
	if c.borrows == exclusive {
		return nil, &BorrowError{Op: "Borrow", Borrows: c.borrows}
	}
	c.borrows++
	return &Ref[T]{cell: c}, nil
}

// Borrow acquires a shared reference to the interior value. It panics with a
// *BorrowError if an exclusive reference is outstanding. The caller must
// Release the handle, normally with defer.
func (c *RefCell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrowMut acquires the exclusive reference to the interior value, or
// returns a *BorrowError if any reference is outstanding.
func (c *RefCell[T]) TryBorrowMut() (*RefMut[T], error) {
	if c.borrows != 0 {
		return nil, &BorrowError{Op: "BorrowMut", Borrows: c.borrows}
	}
	c.borrows = exclusive
	return &RefMut[T]{cell: c}, nil
}

// BorrowMut acquires the exclusive reference to the interior value. It panics
// with a *BorrowError if any reference is outstanding. The caller must
// Release the handle, normally with defer.
func (c *RefCell[T]) BorrowMut() *RefMut[T] {
	m, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return m
}

// View borrows shared access for the duration of fn, releasing it on every
// exit path including a panic inside fn.
func (c *RefCell[T]) View(fn func(v T)) {
	r := c.Borrow()
	defer r.Release()
	fn(r.Value())
}

// Update borrows exclusive access for the duration of fn, releasing it on
// every exit path including a panic inside fn.
func (c *RefCell[T]) Update(fn func(v *T)) {
	m := c.BorrowMut()
	defer m.Release()
	fn(m.Value())
}

// Replace stores v and returns the previous value. It takes a transient
// exclusive borrow, so it panics with a *BorrowError while any reference is
// outstanding.
func (c *RefCell[T]) Replace(v T) T {
	m := c.exclusiveOp("Replace")
	defer m.Release()
	old := c.value
	c.value = v
	return old
}

// Swap exchanges the interior values of c and o. It takes a transient
// exclusive borrow on both cells, so it panics with a *BorrowError if either
// has a reference outstanding. Swapping a cell with itself is a no-op.
func (c *RefCell[T]) Swap(o *RefCell[T]) {
	if c == o {
		return
	}
	m := c.exclusiveOp("Swap")
	defer m.Release()
	om := o.exclusiveOp("Swap")
	defer om.Release()
	c.value, o.value = o.value, c.value
}

// Take extracts the interior value, leaving T's zero value behind. It takes a
// transient exclusive borrow, so it panics with a *BorrowError while any
// reference is outstanding.
func (c *RefCell[T]) Take() T {
	m := c.exclusiveOp("Take")
	defer m.Release()
	var zero T
	old := c.value
	c.value = zero
	return old
}

// exclusiveOp is BorrowMut with the rejected operation's own name in the
// error.
func (c *RefCell[T]) exclusiveOp(op string) *RefMut[T] {
	m, err := c.TryBorrowMut()
	if err != nil {
		panic(&BorrowError{Op: op, Borrows: c.borrows})
	}
	return m
}
