package rankerr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithCode(t *testing.T) {
	err := New(NewInvalidRank{Value: -3})
	assert.Equal(t, "(E002) invalid rank -3: a rank is a non-negative integer or infinity", FormatWithCode(err))
}

func TestCodes(t *testing.T) {
	testCases := []struct {
		err      RankError
		expected ErrCode
	}{
		{NewOrderViolation{Position: 1, Prev: "2", Offending: "1"}, OrderViolation},
		{NewInvalidRank{Value: -1}, InvalidRank},
		{NewArity{Combinator: "ranked application", Reason: "no argument operands"}, Arity},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("E%03d", tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Code())
		})
	}
}

func TestCodeOf(t *testing.T) {
	t.Run("finds the code through wrapping", func(t *testing.T) {
		err := errors.Wrap(New(NewOrderViolation{Position: 0, Prev: "3", Offending: "1"}), "construct ranking")
		assert.Equal(t, OrderViolation, CodeOf(err))
	})

	t.Run("none for foreign errors", func(t *testing.T) {
		assert.Equal(t, None, CodeOf(errors.New("boom")))
	})

	t.Run("none for nil", func(t *testing.T) {
		assert.Equal(t, None, CodeOf(nil))
	})
}

func TestOrderViolationMessage(t *testing.T) {
	err := New(NewOrderViolation{Position: 4, Prev: "7", Offending: "2"})
	require.Contains(t, err.Error(), "element 4")
	require.Contains(t, err.Error(), "rank 2 follows rank 7")
}
