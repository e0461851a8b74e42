package refcell

// Immutable is the demonstration record for RefCell, the same shape the cell
// package demonstrates. Its binding is never reassigned and its fields are
// never assigned directly; Special and SpecialNoCopy change only through
// scoped borrows on their RefCells.
type Immutable struct {
	// Regular is a plain integer with no wrapper.
	Regular int
	// Special holds a trivially-duplicable value.
	Special *RefCell[int]
	// SpecialNoCopy holds a value that requires an explicit deep copy to
	// duplicate. A shared borrow reads it in place without duplicating it,
	// which is the advantage RefCell has over cell.Cell here.
	SpecialNoCopy *RefCell[[]byte]
}

// DefaultImmutable returns the record with its fixed initial values.
func DefaultImmutable() Immutable {
	return Immutable{
		Regular:       1,
		Special:       New(42),
		SpecialNoCopy: New([]byte("hi")),
	}
}
