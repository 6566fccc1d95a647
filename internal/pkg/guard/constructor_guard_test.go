package guard_test

import (
	"errors"
	"sync"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("cart not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuardEmbedded(t *testing.T) {
	errLineNotConstructed := errors.New("line must be created via newLine")

	type line struct {
		name  string
		guard guard.ConstructorGuard
	}
	newLine := func(name string) line {
		return line{name: name, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newLine("soup").guard.Validate(errLineNotConstructed))
	require.ErrorIs(t, line{name: "soup"}.guard.Validate(errLineNotConstructed), errLineNotConstructed)
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
