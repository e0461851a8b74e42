package refcell

import "fmt"

// BorrowError reports a borrow whose access mode conflicts with references
// already outstanding on the cell. Borrow, BorrowMut, Replace, Swap and Take
// panic with a *BorrowError; TryBorrow and TryBorrowMut return one as an
// ordinary error. Either way it indicates overlapping borrow scopes in the
// caller, not an environmental fault.
type BorrowError struct {
	// Op is the operation that was rejected.
	Op string
	// Borrows is the cell's counter at the time of rejection: a positive
	// count of outstanding shared references, or -1 for the outstanding
	// exclusive reference.
	Borrows int
}

// Error implements error.
func (e *BorrowError) Error() string {
	if e.Borrows < 0 {
		return fmt.Sprintf("refcell: %s rejected: value is exclusively borrowed", e.Op)
	}
	return fmt.Sprintf("refcell: %s rejected: value has %d outstanding shared borrow(s)", e.Op, e.Borrows)
}

// Is reports whether target is a *BorrowError, regardless of which operation
// was rejected or the counter state.
func (e *BorrowError) Is(target error) bool {
	_, ok := target.(*BorrowError)
	return ok
}
