package checklist

import (
	"fmt"
	"strings"
	"testing"

	"solartrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// itemByPrefix returns the single item whose title starts with prefix and
// fails the test if zero or several match.
func itemByPrefix(t *testing.T, items []Item, prefix string) Item {
	t.Helper()
	var found []Item
	for _, it := range items {
		if strings.HasPrefix(it.Title, prefix) {
			found = append(found, it)
		}
	}
	require.Len(t, found, 1, "expected exactly one item titled %q*", prefix)
	return found[0]
}

func TestStringConfig_ThresholdAtEightPanels(t *testing.T) {
	label, n := StringConfig(8)
	assert.Equal(t, "2x2", label)
	assert.Equal(t, 2, n)

	label, n = StringConfig(9)
	assert.Equal(t, "3x3", label)
	assert.Equal(t, 3, n)

	_, n = StringConfig(1)
	assert.Equal(t, 2, n)

	_, n = StringConfig(200)
	assert.Equal(t, 3, n)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(14, 7.7, domain.RoofFiberCement)
	b := Generate(14, 7.7, domain.RoofFiberCement)
	require.Equal(t, a, b)
}

func TestGenerate_PowerFloorAppliedDefensively(t *testing.T) {
	// Power-derived quantities below the 3.0 kW floor must match those
	// computed at exactly 3.0 kW.
	below := Generate(6, 1.0, domain.RoofCeramic)
	atFloor := Generate(6, 3.0, domain.RoofCeramic)
	assert.Equal(t, atFloor, below)

	breaker := itemByPrefix(t, below, "AC circuit breaker")
	assert.Equal(t, "AC circuit breaker 32 A", breaker.Title)

	// ceil(3.0*2.5 + 10) = 18
	itemByPrefix(t, below, "AC circuit cable (18 m)")
}

func TestGenerate_BreakerTierBoundaries(t *testing.T) {
	cases := []struct {
		kw   float64
		want int
	}{
		{5.0, 32},
		{5.01, 40},
		{8.0, 40},
		{8.01, 50},
	}
	for _, tc := range cases {
		items := Generate(10, tc.kw, domain.RoofMetal)
		breaker := itemByPrefix(t, items, "AC circuit breaker")
		assert.Equal(t, fmt.Sprintf("AC circuit breaker %d A", tc.want), breaker.Title,
			"inverter power %.2f kW", tc.kw)
	}
}

func TestGenerate_SurgeTierBoundaries(t *testing.T) {
	cases := []struct {
		kw   float64
		want int
	}{
		{5.0, 20},
		{5.01, 40},
		{15.0, 40},
		{15.01, 60},
	}
	for _, tc := range cases {
		items := Generate(10, tc.kw, domain.RoofMetal)
		spd := itemByPrefix(t, items, "Surge protection device")
		assert.Equal(t, fmt.Sprintf("Surge protection device %d kA", tc.want), spd.Title,
			"inverter power %.2f kW", tc.kw)
	}
}

func TestGenerate_ItemCountPerRoofType(t *testing.T) {
	cases := []struct {
		roof domain.RoofType
		want int
	}{
		{domain.RoofCeramic, 11},
		{domain.RoofMetal, 10},
		{domain.RoofFiberCement, 12},
		{domain.RoofGroundMount, 11},
		{domain.RoofType("thatch"), 7}, // unknown: safety + electrical only
	}
	for _, tc := range cases {
		items := Generate(10, 5.5, tc.roof)
		assert.Len(t, items, tc.want, "roof %q", tc.roof)
		for _, it := range items {
			assert.NotEmpty(t, it.Title)
			assert.NotEmpty(t, it.Description)
		}
	}
}

func TestGenerate_UnknownRoofKeepsSafetyAndElectrical(t *testing.T) {
	items := Generate(10, 5.5, domain.RoofType("green-roof"))
	require.Len(t, items, 7)
	for _, it := range items {
		assert.NotEqual(t, domain.CategoryStructure, it.Category, "item %q", it.Title)
	}
	itemByPrefix(t, items, "Grounding kit")
	itemByPrefix(t, items, "AC circuit breaker")
}

func TestGenerate_CategoriesEmittedInDisplayOrder(t *testing.T) {
	rank := map[domain.ItemCategory]int{
		domain.CategorySafety:     0,
		domain.CategoryElectrical: 1,
		domain.CategoryStructure:  2,
	}
	for _, roof := range []domain.RoofType{
		domain.RoofCeramic, domain.RoofMetal, domain.RoofFiberCement, domain.RoofGroundMount,
	} {
		items := Generate(9, 4.95, roof)
		prev := 0
		for _, it := range items {
			r, ok := rank[it.Category]
			require.True(t, ok, "unexpected category %q", it.Category)
			assert.GreaterOrEqual(t, r, prev, "roof %q: %q out of order", roof, it.Title)
			prev = r
		}
	}
}

func TestGenerate_SmallCeramicInstallation(t *testing.T) {
	// 6 panels, 3.3 kW, ceramic roof.
	items := Generate(6, 3.3, domain.RoofCeramic)
	require.Len(t, items, 11)

	// 2 strings of 3 panels.
	box := itemByPrefix(t, items, "DC string box")
	assert.Equal(t, "DC string box, 2 inputs", box.Title)
	assert.Contains(t, box.Description, "13.75 A")
	assert.Contains(t, box.Description, "3.30 kWp")

	// ceil(6*4.5) = 27
	dc := itemByPrefix(t, items, "6 mm² solar cable")
	assert.Equal(t, "6 mm² solar cable (27 m)", dc.Title)
	assert.Equal(t, domain.CategoryElectrical, dc.Category)

	// max(3, 2+1) = 3
	itemByPrefix(t, items, "MC4 connector pairs (3 sets)")
	itemByPrefix(t, items, "AC circuit breaker 32 A")
	itemByPrefix(t, items, "Surge protection device 20 kA")

	ground := itemByPrefix(t, items, "Grounding kit")
	assert.Equal(t, "Grounding kit (12 m bare copper)", ground.Title)
	assert.Equal(t, domain.CategorySafety, ground.Category)

	// ceil(6*1.2) = 8 fixation points
	hooks := itemByPrefix(t, items, "Ceramic roof hooks")
	assert.Equal(t, "Ceramic roof hooks (8 pcs)", hooks.Title)
	assert.Equal(t, domain.CategoryStructure, hooks.Category)

	// 2 rows of ceil(3*2.1)=7 m
	itemByPrefix(t, items, "Aluminum mounting rail (14 m)")
	itemByPrefix(t, items, "Panel clamps (12 pcs)")
	itemByPrefix(t, items, "Fixation kits (8 sets)")
}

func TestGenerate_GroundMountInstallation(t *testing.T) {
	// 12 panels, 6.0 kW, ground mount.
	items := Generate(12, 6.0, domain.RoofGroundMount)
	require.Len(t, items, 11)

	box := itemByPrefix(t, items, "DC string box")
	assert.Equal(t, "DC string box, 3 inputs", box.Title)

	itemByPrefix(t, items, "AC circuit breaker 40 A")
	itemByPrefix(t, items, "MC4 connector pairs (4 sets)")
	itemByPrefix(t, items, "6 mm² solar cable (54 m)")

	// ceil(12/6) = 2 kits, 3 strings * 2 = 6 foundation points
	itemByPrefix(t, items, "Ground-mount structure kits (2 sets)")
	itemByPrefix(t, items, "Concrete foundation points (6 pcs)")
	itemByPrefix(t, items, "Anchor bolt kits (6 sets)")

	mesh := itemByPrefix(t, items, "Grounding mesh")
	assert.Equal(t, domain.CategoryStructure, mesh.Category)
}

func TestGenerate_LargeMetalInstallation(t *testing.T) {
	// 20 panels, 11.0 kW, metal roof.
	items := Generate(20, 11.0, domain.RoofMetal)
	require.Len(t, items, 10)

	itemByPrefix(t, items, "AC circuit breaker 50 A")
	itemByPrefix(t, items, "Surge protection device 40 kA")

	// fixationPoints = ceil(20*1.2) = 24; ceil(24*0.7) = 17
	clamps := itemByPrefix(t, items, "Trapezoidal sheet clamps")
	assert.Equal(t, "Trapezoidal sheet clamps (17 pcs)", clamps.Title)
	assert.Contains(t, clamps.Description, "24 fixation points")

	itemByPrefix(t, items, "Self-tapping screws (48 pcs)")

	// 3 rows of ceil(ceil(20/3)*2.1) = 15 m
	itemByPrefix(t, items, "Aluminum mounting rail (45 m)")

	// Metal roofs have no hooks or separate fixation kits.
	for _, it := range items {
		assert.NotContains(t, it.Title, "roof hooks")
		assert.False(t, strings.HasPrefix(it.Title, "Fixation kits"))
	}
}
