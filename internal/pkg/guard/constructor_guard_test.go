package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by commands in this codebase to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type confirmRequest struct {
		step  string
		guard guard.ConstructorGuard
	}

	var errNotConstructed = errors.New("confirmRequest must be created via newConfirmRequest")

	newConfirmRequest := func(step string) (confirmRequest, error) {
		if step == "" {
			return confirmRequest{}, errors.New("step is required")
		}
		return confirmRequest{step: step, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		req, err := newConfirmRequest("PACK")

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errNotConstructed))
		assert.Equal(t, "PACK", req.step)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var req confirmRequest

		err := req.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
