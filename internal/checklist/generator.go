// Package checklist derives the bill of materials and safety checklist for a
// solar installation from its basic parameters. Generation is a pure
// function: no I/O, no randomness, and identical inputs always produce an
// identical item sequence.
package checklist

import (
	"fmt"
	"math"

	"solartrack/internal/domain"
)

// Item is one generated checklist entry before persistence. The project
// service attaches the owning project ID and the initial completion state
// when storing it.
type Item struct {
	Title       string
	Description string
	Category    domain.ItemCategory
}

const (
	// panelPowerW is the per-panel rating assumed for all sizing.
	panelPowerW = 550
	// panelOpenCircuitV approximates the open-circuit voltage used to
	// estimate string current. Not panel-count dependent.
	panelOpenCircuitV = 40.0
	// minInverterPowerKw is re-applied defensively even though the API
	// boundary already enforces it.
	minInverterPowerKw = 3.0
	// panelsPerGroundKit is the capacity of one fixed-tilt structure kit.
	panelsPerGroundKit = 6
)

// StringConfig returns the display label and string count for a panel
// count. It is the single source of truth for the 2x2 vs 3x3 configuration:
// the generator, the seeder and the AI prompts must all agree with it.
func StringConfig(panelCount int) (label string, strings int) {
	if panelCount > 8 {
		return "3x3", 3
	}
	return "2x2", 2
}

// TotalPanelPowerKw is the array size assumed for panelCount panels.
func TotalPanelPowerKw(panelCount int) float64 {
	return float64(panelCount) * panelPowerW / 1000.0
}

// Generate derives the ordered checklist for a project: one grounding/safety
// item, six electrical-material items, then the roof-specific structure
// items. Inputs are assumed pre-validated; the only defensive adjustment is
// the inverter power floor. An unrecognized roof type yields an empty
// structure subset rather than an error, so the safety and electrical items
// survive regardless.
func Generate(panelCount int, inverterPowerKw float64, roof domain.RoofType) []Item {
	adjustedKw := math.Max(inverterPowerKw, minInverterPowerKw)
	totalPanelKw := TotalPanelPowerKw(panelCount)

	_, numStrings := StringConfig(panelCount)
	panelsPerString := ceilDiv(panelCount, numStrings)
	stringCurrentA := float64(panelPowerW) / panelOpenCircuitV

	items := make([]Item, 0, 12)
	items = append(items, groundingItem(panelCount, numStrings))
	items = append(items, electricalItems(panelCount, adjustedKw, totalPanelKw, numStrings, panelsPerString, stringCurrentA)...)
	items = append(items, structureItems(panelCount, numStrings, roof)...)
	return items
}

func groundingItem(panelCount, numStrings int) Item {
	rods := ceilF(float64(numStrings) * 0.5)
	bareM := panelCount * 2

	return Item{
		Title: fmt.Sprintf("Grounding kit (%d m bare copper)", bareM),
		Description: fmt.Sprintf(
			"%d copper-bonded ground rod(s) of 2.4 m with clamps and %d m of 16 mm² bare copper conductor for frame and rail equipotential bonding.",
			rods, bareM),
		Category: domain.CategorySafety,
	}
}

func electricalItems(panelCount int, adjustedKw, totalPanelKw float64, numStrings, panelsPerString int, stringCurrentA float64) []Item {
	dcM := ceilF(float64(panelCount) * 4.5)
	acM := ceilF(adjustedKw*2.5 + 10)
	mc4Pairs := numStrings + 1
	if mc4Pairs < 3 {
		mc4Pairs = 3
	}
	breakerA := acBreakerRating(adjustedKw)
	surgeKa := surgeRating(adjustedKw)

	return []Item{
		{
			Title: fmt.Sprintf("6 mm² solar cable (%d m)", dcM),
			Description: fmt.Sprintf(
				"Double-insulated photovoltaic cable per EN 50618 / IEC 62930, 1.5 kV DC, UV resistant; DC wiring for %d strings of %d panels with service loops at the combiner.",
				numStrings, panelsPerString),
			Category: domain.CategoryElectrical,
		},
		{
			Title: fmt.Sprintf("AC circuit cable (%d m)", acM),
			Description: fmt.Sprintf(
				"Three-core %d mm² flexible copper cable, 750 V PVC insulation, for the %.1f kW inverter output; run length includes a 10 m distribution-board allowance.",
				acWireSection(breakerA), adjustedKw),
			Category: domain.CategoryElectrical,
		},
		{
			Title: fmt.Sprintf("MC4 connector pairs (%d sets)", mc4Pairs),
			Description: fmt.Sprintf(
				"IP68 male/female MC4 pairs rated 1000 V DC / 30 A; one set per string termination plus spares for %d strings.",
				numStrings),
			Category: domain.CategoryElectrical,
		},
		{
			Title: fmt.Sprintf("DC string box, %d inputs", numStrings),
			Description: fmt.Sprintf(
				"IP65 combiner with 15 A gPV fuses per string (string current ≈ %.2f A) and a 1000 V DC disconnect switch, sized for the %.2f kWp array.",
				stringCurrentA, totalPanelKw),
			Category: domain.CategoryElectrical,
		},
		{
			Title: fmt.Sprintf("AC circuit breaker %d A", breakerA),
			Description: fmt.Sprintf(
				"Two-pole thermal-magnetic breaker, curve C, %d A, 6 kA breaking capacity per IEC 60947-2, matched to %.1f kW of inverter output.",
				breakerA, adjustedKw),
			Category: domain.CategoryElectrical,
		},
		{
			Title: fmt.Sprintf("Surge protection device %d kA", surgeKa),
			Description: fmt.Sprintf(
				"Type II SPD per IEC 61643-11, Imax %d kA, installed beside the AC breaker on the inverter output circuit.",
				surgeKa),
			Category: domain.CategoryElectrical,
		},
	}
}

// acBreakerRating is a three-tier step function over adjusted inverter
// power. Boundaries are strictly greater than: exactly 5.0 kW stays on 32 A
// and exactly 8.0 kW stays on 40 A.
func acBreakerRating(adjustedKw float64) int {
	switch {
	case adjustedKw <= 5:
		return 32
	case adjustedKw <= 8:
		return 40
	default:
		return 50
	}
}

func surgeRating(adjustedKw float64) int {
	switch {
	case adjustedKw <= 5:
		return 20
	case adjustedKw <= 15:
		return 40
	default:
		return 60
	}
}

// acWireSection maps the breaker tier to the matching conductor section.
func acWireSection(breakerA int) int {
	switch breakerA {
	case 32:
		return 4
	case 40:
		return 6
	default:
		return 10
	}
}

// structureItems dispatches on roof type. Unknown types fall through to an
// empty list on purpose: upstream validation rejects them, and if one ever
// slips through the project still gets its safety and electrical items.
func structureItems(panelCount, numStrings int, roof domain.RoofType) []Item {
	switch roof {
	case domain.RoofCeramic:
		return hookedRoofItems(panelCount, numStrings, "Ceramic")
	case domain.RoofMetal:
		return metalRoofItems(panelCount, numStrings)
	case domain.RoofFiberCement:
		fix := fixationPoints(panelCount)
		reinforcement := ceilF(float64(fix) * 0.3)
		items := hookedRoofItems(panelCount, numStrings, "Fiber-cement")
		return append(items, Item{
			Title: fmt.Sprintf("Structural reinforcement profiles (%d pcs)", reinforcement),
			Description: fmt.Sprintf(
				"Galvanized steel profiles spreading the point load of %d fixation points across the fragile sheets.",
				fix),
			Category: domain.CategoryStructure,
		})
	case domain.RoofGroundMount:
		return groundMountItems(panelCount, numStrings)
	default:
		return nil
	}
}

// fixationPoints is the shared fixation-point count for all pitched-roof
// variants: 1.2 points per panel, rounded up.
func fixationPoints(panelCount int) int {
	return ceilF(float64(panelCount) * 1.2)
}

// hookedRoofItems covers ceramic and fiber-cement roofs, which share the
// hook/rail/clamp pattern and differ only in the hook material label.
func hookedRoofItems(panelCount, numStrings int, material string) []Item {
	fix := fixationPoints(panelCount)
	panelsPerRow := ceilDiv(panelCount, numStrings)
	railPerRowM := ceilF(float64(panelsPerRow) * 2.1)
	railM := railPerRowM * numStrings
	clamps := panelCount * 2

	return []Item{
		{
			Title: fmt.Sprintf("%s roof hooks (%d pcs)", material, fix),
			Description: fmt.Sprintf(
				"Adjustable stainless A2 roof hooks for %d fixation points (1.2 per panel), load-rated 2.5 kN each.",
				fix),
			Category: domain.CategoryStructure,
		},
		railItem(railM, railPerRowM, numStrings, panelsPerRow),
		{
			Title: fmt.Sprintf("Panel clamps (%d pcs)", clamps),
			Description: fmt.Sprintf(
				"Mid and end clamps for 30-40 mm framed modules, two per panel (%d total), stainless hardware included.",
				clamps),
			Category: domain.CategoryStructure,
		},
		{
			Title: fmt.Sprintf("Fixation kits (%d sets)", fix),
			Description: fmt.Sprintf(
				"Sealing and fastening kits (screws, washers, flashing) matching the %d roof hooks.",
				fix),
			Category: domain.CategoryStructure,
		},
	}
}

func metalRoofItems(panelCount, numStrings int) []Item {
	fix := fixationPoints(panelCount)
	trapClamps := ceilF(float64(fix) * 0.7)
	screws := fix * 2
	panelsPerRow := ceilDiv(panelCount, numStrings)
	railPerRowM := ceilF(float64(panelsPerRow) * 2.1)
	railM := railPerRowM * numStrings

	return []Item{
		{
			Title: fmt.Sprintf("Trapezoidal sheet clamps (%d pcs)", trapClamps),
			Description: fmt.Sprintf(
				"Seam clamps with EPDM seal replacing roof hooks on sheet-metal decks; %d clamps covering %d fixation points.",
				trapClamps, fix),
			Category: domain.CategoryStructure,
		},
		railItem(railM, railPerRowM, numStrings, panelsPerRow),
		{
			Title: fmt.Sprintf("Self-tapping screws (%d pcs)", screws),
			Description: fmt.Sprintf(
				"Bi-metal self-drilling screws with EPDM washers, two per fixation point (%d points).",
				fix),
			Category: domain.CategoryStructure,
		},
	}
}

func groundMountItems(panelCount, numStrings int) []Item {
	kits := ceilDiv(panelCount, panelsPerGroundKit)
	foundations := numStrings * 2

	return []Item{
		{
			Title: fmt.Sprintf("Ground-mount structure kits (%d sets)", kits),
			Description: fmt.Sprintf(
				"Hot-dip galvanized fixed-tilt frames at 20°, each carrying up to %d panels (%d panels total).",
				panelsPerGroundKit, panelCount),
			Category: domain.CategoryStructure,
		},
		{
			Title: fmt.Sprintf("Concrete foundation points (%d pcs)", foundations),
			Description: fmt.Sprintf(
				"Cast-in-place footings, 40x40x50 cm, two per string row for %d rows.",
				numStrings),
			Category: domain.CategoryStructure,
		},
		{
			Title: fmt.Sprintf("Anchor bolt kits (%d sets)", foundations),
			Description: fmt.Sprintf(
				"M12 chemical anchor sets with levelling plates, one per foundation point (%d points).",
				foundations),
			Category: domain.CategoryStructure,
		},
		{
			Title:       "Grounding mesh",
			Description: "Buried bare-copper mesh bonding every foundation point into the array grounding system.",
			Category:    domain.CategoryStructure,
		},
	}
}

func railItem(railM, railPerRowM, numStrings, panelsPerRow int) Item {
	return Item{
		Title: fmt.Sprintf("Aluminum mounting rail (%d m)", railM),
		Description: fmt.Sprintf(
			"Anodized EN AW-6063 T6 rail, %d rows of %d m carrying %d panels per row, splice kits included.",
			numStrings, railPerRowM, panelsPerRow),
		Category: domain.CategoryStructure,
	}
}

func ceilF(v float64) int {
	return int(math.Ceil(v))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
