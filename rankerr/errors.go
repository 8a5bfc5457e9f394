package rankerr

import (
	"fmt"
)

// NewOrderViolation reports two consecutive elements of a ranking whose
// ranks decrease. Position indexes the offending element from the start of
// the traversal.
type NewOrderViolation struct {
	Position  int
	Prev      string
	Offending string
	stack     []byte
}

func (e NewOrderViolation) Error() string {
	return fmt.Sprintf("ranking out of order at element %d: rank %s follows rank %s", e.Position, e.Offending, e.Prev)
}
func (e NewOrderViolation) Code() ErrCode    { return OrderViolation }
func (e NewOrderViolation) getStack() []byte { return e.stack }
func (e NewOrderViolation) withStack(stack []byte) RankError {
	e.stack = stack
	return e
}

type NewInvalidRank struct {
	Value int64
	stack []byte
}

func (e NewInvalidRank) Error() string {
	return fmt.Sprintf("invalid rank %d: a rank is a non-negative integer or infinity", e.Value)
}
func (e NewInvalidRank) Code() ErrCode    { return InvalidRank }
func (e NewInvalidRank) getStack() []byte { return e.stack }
func (e NewInvalidRank) withStack(stack []byte) RankError {
	e.stack = stack
	return e
}

type NewArity struct {
	Combinator string
	Reason     string
	stack      []byte
}

func (e NewArity) Error() string {
	return fmt.Sprintf("%s: %s", e.Combinator, e.Reason)
}
func (e NewArity) Code() ErrCode    { return Arity }
func (e NewArity) getStack() []byte { return e.stack }
func (e NewArity) withStack(stack []byte) RankError {
	e.stack = stack
	return e
}
