/*
Package cell provides Cell, a single-owner mutable container for exactly one value.
A Cell gives a record interior mutability: the record's own binding is never
reassigned and its fields are never assigned directly, yet the value inside a
Cell field can still be replaced through the Cell's methods. The interior value
lives behind an unexported field, so those methods are the only way to reach it.

To demonstrate this, the package ships an Immutable record with three fields:

	type Immutable struct {
		Regular       int              // a plain integer
		Special       Cell[int]        // a trivially-duplicable value in a Cell
		SpecialNoCopy Cell[[]byte]     // a value that needs a deep copy, in a Cell
	}

	a := cell.DefaultImmutable() // Regular=1, Special=42, SpecialNoCopy="hi"

Without touching the record itself, the wrapped fields can be mutated:

	a.Special.Set(2)
	a.SpecialNoCopy.Set([]byte("bye"))

Set, Replace and Swap are defined for every element type: each puts a new value
in, so the cell is never left empty. Get is different. Reading a value out
without disturbing the original only works for types whose values duplicate
bit-for-bit, so Get is a package-level function with the tighter Duplicable
constraint rather than a method on Cell:

	n := cell.Get(&a.Special) // ok, int is Duplicable

	cell.Get(&a.SpecialNoCopy) // compile error: []byte does not satisfy Duplicable

For element types that need real duplication logic, implement Copier and use
GetCopy, or use Replace/Swap to put something back in while taking the old
value out:

	old := a.SpecialNoCopy.Replace([]byte("HI!"))

A Cell never yields a live reference into its interior; every operation moves
or copies whole values. That is what makes it free of any runtime bookkeeping
and of any failure path. The trade-off is that a Cell is strictly
single-goroutine: none of its operations are atomic, so sharing one across
goroutines requires external synchronization. If you need scoped references
with runtime checking instead, see the refcell package.
*/
package cell

// Duplicable is the set of element types whose values can be copied
// bit-for-bit, allowing Get to read the value out without disturbing the
// original. Slices, maps, pointers and composite types are excluded: reading
// those out would either alias the interior or require a deep copy.
type Duplicable interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Copier is an interface that allows a type to be copied. Element types that
// are not Duplicable can implement this to make a deep copy of themselves
// available to GetCopy.
type Copier[T any] interface {
	// Copy returns a copy of the value.
	Copy() T
}

// Cell is a mutable container holding exactly one value of type T. The zero
// value is a Cell holding T's zero value; a Cell is never empty. Methods on
// Cell must not be called concurrently from multiple goroutines.
type Cell[T any] struct {
	value T
}

// New returns a Cell holding v.
func New[T any](v T) Cell[T] {
	return Cell[T]{value: v}
}

// Set overwrites the interior value with v, discarding the previous value.
// Defined for every T.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Replace stores v in the cell and returns the previous value, transferring
// its ownership to the caller. Defined for every T.
func (c *Cell[T]) Replace(v T) T {
	old := c.value
	c.value = v
	return old
}

// Swap exchanges the interior values of c and o. Swapping a cell with itself
// is a no-op. Defined for every T.
func (c *Cell[T]) Swap(o *Cell[T]) {
	if c == o {
		return
	}
	c.value, o.value = o.value, c.value
}

// Get returns a copy of the interior value. It is a function rather than a
// method so that it can require the Duplicable constraint: calling Get on a
// Cell of any other element type is a compile error. There is no runtime
// fallback, because reading a non-duplicable value out would mean moving it
// and leaving the cell empty.
func Get[T Duplicable](c *Cell[T]) T {
	return c.value
}

// GetCopy returns a deep copy of the interior value for element types that
// implement Copier. This is the explicit-duplication counterpart to Get.
func GetCopy[T Copier[T]](c *Cell[T]) T {
	return c.value.Copy()
}
