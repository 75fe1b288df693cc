// File path: internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCylinderType(t *testing.T) {
	tests := []struct {
		in   string
		want CylinderType
		ok   bool
	}{
		{in: "Oxygen", want: Oxygen, ok: true},
		{in: "  nitrogen ", want: Nitrogen, ok: true},
		{in: "carbon dioxide", want: CarbonDioxide, ok: true},
		{in: "", ok: false},
		{in: "Helium", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCylinderType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentificationTypesAreSubsetOfTracker(t *testing.T) {
	ids := IdentificationTypes()
	require.Len(t, ids, 4)
	for _, info := range ids {
		assert.True(t, info.Type.Valid(), "type %q", info.Type)
		assert.True(t, IsIdentificationType(info.Type))
	}
	assert.False(t, IsIdentificationType(Hydrogen))
	assert.Len(t, CylinderTypes(), 6)
}

func TestStatusSetsAreClosed(t *testing.T) {
	assert.True(t, StatusIdentified.Valid())
	assert.True(t, StatusPendingDegassing.Valid())
	assert.False(t, Status("Lost").Valid())

	assert.True(t, DegassingNotRequired.Valid())
	assert.False(t, DegassingStatus("Paused").Valid())

	got, ok := ParseDegassingStatus("in progress")
	require.True(t, ok)
	assert.Equal(t, DegassingInProgress, got)
}

func TestColorsFallBack(t *testing.T) {
	assert.Equal(t, "orange", StatusColor(StatusPendingDegassing))
	assert.Equal(t, "gray", StatusColor(Status("unknown")))
	assert.Equal(t, "green", DegassingColor(DegassingCompleted))
	assert.Equal(t, "green", TypeColor(CylinderType("Helium")))
}

func TestProcedureTables(t *testing.T) {
	steps := DegassingSteps()
	require.Len(t, steps, 5)
	assert.Equal(t, "Identification", steps[0].Title)
	assert.Equal(t, "Certification", steps[4].Title)

	param, ok := TestingParameterFor(Hydrogen)
	require.True(t, ok)
	assert.Equal(t, 25, param.MaxPPM)
	_, ok = TestingParameterFor(Argon)
	assert.False(t, ok)

	assert.Contains(t, ColorCodes(), "Argon - Dark Green")
}
