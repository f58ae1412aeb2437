package busroutes_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/busroutes"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := busroutes.Errorf(busroutes.EINVALID, "route ID %q is not a single token", "1 2")

	assert.Equal(t, busroutes.EINVALID, busroutes.ErrorCode(err))
	assert.Equal(t, "route ID \"1 2\" is not a single token", busroutes.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, busroutes.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, busroutes.ErrorMessage(nil))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("maps wrapped fetch errors to EFETCH", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("index: %w", &busroutes.FetchError{URL: "https://example.com", StatusCode: 503})

		assert.Equal(t, busroutes.EFETCH, busroutes.ErrorCode(err))
		assert.Equal(t, "fetch https://example.com: HTTP 503", busroutes.ErrorMessage(err))
	})

	t.Run("maps joined alignment errors to EALIGN", func(t *testing.T) {
		t.Parallel()

		err := errors.Join(&busroutes.AlignmentError{Destination: "Everett", Numbers: 3, Names: 2})

		assert.Equal(t, busroutes.EALIGN, busroutes.ErrorCode(err))
		assert.Contains(t, busroutes.ErrorMessage(err), "3 stop numbers but 2 stop names")
	})

	t.Run("treats unknown errors as internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, busroutes.EINTERNAL, busroutes.ErrorCode(err))
		assert.Equal(t, "Internal error.", busroutes.ErrorMessage(err))
	})
}

func TestFetchError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &busroutes.FetchError{URL: "https://example.com", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch https://example.com: connection refused", err.Error())
}

func TestAlignmentErrors(t *testing.T) {
	t.Parallel()

	t.Run("collects joined alignment errors in order", func(t *testing.T) {
		t.Parallel()

		a := &busroutes.AlignmentError{Destination: "A"}
		b := &busroutes.AlignmentError{Destination: "B"}

		errs := busroutes.AlignmentErrors(errors.Join(a, errors.New("other"), b))

		assert.Equal(t, []*busroutes.AlignmentError{a, b}, errs)
	})

	t.Run("finds a wrapped alignment error", func(t *testing.T) {
		t.Parallel()

		a := &busroutes.AlignmentError{Destination: "A"}

		errs := busroutes.AlignmentErrors(fmt.Errorf("route 201: %w", a))

		assert.Equal(t, []*busroutes.AlignmentError{a}, errs)
	})

	t.Run("returns nothing for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, busroutes.AlignmentErrors(nil))
		assert.Empty(t, busroutes.AlignmentErrors(&busroutes.FetchError{URL: "u"}))
	})
}
