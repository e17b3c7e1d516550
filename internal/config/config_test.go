package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ProjectNameOverridesDefault(t *testing.T) {
	cfg := Build("MyApp", "", nil)

	assert.Equal(t, "MyApp", cfg.ProjectName)
	assert.Equal(t, UnitGeneric, cfg.ComplexityUnit, "unit should fall back to default when omitted")
}

func TestBuild_ComplexityUnitOverride(t *testing.T) {
	tests := []struct {
		name string
		unit ComplexityUnit
		want ComplexityUnit
	}{
		{"omitted keeps default", "", UnitGeneric},
		{"story points", UnitStoryPoints, UnitStoryPoints},
		{"hours", UnitHours, UnitHours},
		{"q-units", UnitQUnits, UnitQUnits},
		{"days", UnitDays, UnitDays},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Build("MyApp", tc.unit, nil)
			assert.Equal(t, tc.want, cfg.ComplexityUnit)
		})
	}
}

func TestBuild_ModuleRecords(t *testing.T) {
	cfg := Build("MyApp", "", []string{"auth", "payment"})

	require.Len(t, cfg.Modules, 2)
	assert.Equal(t, "auth", cfg.Modules[0].Name)
	assert.Equal(t, "src/auth", cfg.Modules[0].Path)
	assert.Nil(t, cfg.Modules[0].Owner, "owner should be unset by default")
	assert.Equal(t, "payment", cfg.Modules[1].Name)
	assert.Equal(t, "src/payment", cfg.Modules[1].Path)
	assert.Nil(t, cfg.Modules[1].Owner)
}

func TestBuild_NoModulesByDefault(t *testing.T) {
	cfg := Build("MyApp", "", nil)

	assert.Empty(t, cfg.Modules)
	assert.False(t, cfg.ApprovalGatesEnabled)
	assert.Nil(t, cfg.ExternalTracker)
}

func TestDefault_FixedSequences(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"TODO", "IN_PROGRESS", "BLOCKED", "REVIEW", "DONE"}, cfg.Statuses)
	assert.Equal(t, []string{"P0-Critical", "P1-High", "P2-Medium", "P3-Low"}, cfg.PriorityLevels)
	assert.Equal(t, "small (1-2), medium (3-5), large (6-10)", cfg.ComplexityScale)
}

func TestDefault_ReturnsIndependentValues(t *testing.T) {
	first := Default()
	first.Statuses[0] = "MUTATED"
	first.Modules = append(first.Modules, Module{Name: "x", Path: "src/x"})

	second := Default()
	assert.Equal(t, "TODO", second.Statuses[0], "mutating one default must not leak into the next")
	assert.Empty(t, second.Modules)
}

func TestValidComplexityUnits(t *testing.T) {
	for _, name := range UnitNames() {
		assert.True(t, ValidComplexityUnits[name], "unit %q should be valid", name)
	}
	assert.False(t, ValidComplexityUnits["fortnights"])
	assert.False(t, ValidComplexityUnits[""])
}
