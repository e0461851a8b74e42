package cell

// Immutable is the demonstration record for Cell. Its binding is never
// reassigned and its fields are never assigned directly in any example;
// Special and SpecialNoCopy change only through their Cell methods, while
// Regular can only change if the record itself is rewritten.
type Immutable struct {
	// Regular is a plain integer with no wrapper.
	Regular int
	// Special holds a trivially-duplicable value, so cell.Get works on it.
	Special Cell[int]
	// SpecialNoCopy holds a value that requires an explicit deep copy to
	// duplicate. cell.Get on this field does not compile; use Replace or
	// Swap to take the value out.
	SpecialNoCopy Cell[[]byte]
}

// DefaultImmutable returns the record with its fixed initial values.
func DefaultImmutable() Immutable {
	return Immutable{
		Regular:       1,
		Special:       New(42),
		SpecialNoCopy: New([]byte("hi")),
	}
}
