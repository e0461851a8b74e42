package refcell

// Ref is a shared, read-only reference to a RefCell's interior value. It is
// valid from the Borrow that created it until Release.
type Ref[T any] struct {
	cell     *RefCell[T]
	released bool
}

// Value returns the referenced value. It panics if the Ref has been released.
// Callers must not mutate reference types reached through the returned value;
// a Ref grants read access only.
func (r *Ref[T]) Value() T {
	if r.released {
		panic("refcell: Value on a released Ref")
	}
	return r.cell.value
}

// Release ends the borrow, decrementing the cell's shared count. Releasing an
// already-released Ref is a no-op, so it is safe to both defer a Release and
// release early.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.borrows--
}

// RefMut is the exclusive, read-write reference to a RefCell's interior
// value. It is valid from the BorrowMut that created it until Release.
type RefMut[T any] struct {
	cell     *RefCell[T]
	released bool
}

// Value returns a pointer to the interior value for in-place mutation. It
// panics if the RefMut has been released. The pointer must not be kept past
// Release.
func (m *RefMut[T]) Value() *T {
	if m.released {
		panic("refcell: Value on a released RefMut")
	}
	return &m.cell.value
}

// Set overwrites the interior value. It panics if the RefMut has been
// released.
func (m *RefMut[T]) Set(v T) {
	if m.released {
		panic("refcell: Set on a released RefMut")
	}
	m.cell.value = v
}

// Release ends the exclusive borrow, returning the cell to the unborrowed
// state. Releasing an already-released RefMut is a no-op.
func (m *RefMut[T]) Release() {
	if m.released {
		return
	}
	m.released = true
	m.cell.borrows = 0
}
