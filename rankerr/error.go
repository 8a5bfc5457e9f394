package rankerr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	// OrderViolation means an explicit association list or composed stream
	// was found not in non-decreasing rank order
	OrderViolation
	// InvalidRank means a rank-typed parameter was not a non-negative
	// integer or infinity
	InvalidRank
	// Arity means a ranked-application combinator was invoked with no
	// function or argument operands
	Arity
)

type RankError interface {
	error
	Code() ErrCode

	withStack([]byte) RankError
	getStack() []byte
}

func FormatWithCode(e RankError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E RankError](err E) RankError {
	return err.withStack(debug.Stack())
}

// CodeOf reports the code of the RankError in err's chain, or None when
// there is no RankError to find.
func CodeOf(err error) ErrCode {
	var re RankError
	if errors.As(err, &re) {
		return re.Code()
	}
	return None
}
