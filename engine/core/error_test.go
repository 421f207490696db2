package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskfs/taskfs/engine/core"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Run("Should name the missing field in misconfigured errors", func(t *testing.T) {
		err := core.NewMisconfiguredError("base_dir", "")
		assert.Contains(t, err.Error(), "base_dir")
		assert.True(t, core.IsMisconfigured(err))
	})

	t.Run("Should include the reason when given", func(t *testing.T) {
		err := core.NewMisconfiguredError("chunks", "must be positive")
		assert.Contains(t, err.Error(), "chunks")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Should name the capability in missing capability errors", func(t *testing.T) {
		err := core.NewMissingCapabilityError("date")
		assert.Contains(t, err.Error(), `"date"`)
		assert.True(t, core.IsMissingCapability(err))
		assert.False(t, core.IsMisconfigured(err))
	})

	t.Run("Should name the binary in dependency errors", func(t *testing.T) {
		err := core.NewDependencyUnavailableError("pigz", "install pigz >= 2.4")
		assert.Contains(t, err.Error(), `"pigz"`)
		assert.Contains(t, err.Error(), "install pigz")
		assert.True(t, core.IsDependencyUnavailable(err))
	})

	t.Run("Should match through wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("failed to plan task: %w", core.NewMisconfiguredError("tag", ""))
		assert.True(t, core.IsMisconfigured(err))
	})
}
