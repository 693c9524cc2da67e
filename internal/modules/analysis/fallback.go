package analysis

import (
	"fmt"
	"strings"

	"solartrack/internal/checklist"
	"solartrack/internal/domain"
)

// DeterministicAnalysis scores a project without the model. Used whenever
// the AI endpoint is missing, times out or returns something unparseable,
// so it must work for any stored project.
func DeterministicAnalysis(p *domain.Project) *AnalysisResult {
	score := 70
	var ratio float64
	if p.InverterPowerKw > 0 {
		ratio = checklist.TotalPanelPowerKw(p.PanelCount) / p.InverterPowerKw
	}

	// DC/AC ratio between 1.0 and 1.3 is the sweet spot for self-consumption
	// systems; undersized arrays waste inverter capacity.
	switch {
	case ratio >= 1.0 && ratio <= 1.3:
		score += 15
	case ratio > 1.3 && ratio <= 1.5:
		score += 5
	case ratio < 0.8:
		score -= 10
	}
	if p.RoofType == domain.RoofGroundMount {
		score += 5 // free choice of tilt and orientation
	}

	recs := []string{
		fmt.Sprintf("Keep the DC/AC ratio near 1.2; this design sits at %.2f.", ratio),
	}
	switch p.RoofType {
	case domain.RoofCeramic, domain.RoofFiberCement:
		recs = append(recs, "Verify hook placement against rafter positions before lifting any tiles.")
	case domain.RoofMetal:
		recs = append(recs, "Check sheet thickness; trapezoidal clamps need at least 0.5 mm of steel.")
	case domain.RoofGroundMount:
		recs = append(recs, "Let foundations cure to nominal strength before mounting the frames.")
	}

	return &AnalysisResult{
		Score:           clampScore(score),
		Recommendations: recs,
		CostNote: fmt.Sprintf(
			"Electrical materials scale with the %d-panel array and mounting hardware with the %s roof; the %.1f kW inverter is the single largest line item.",
			p.PanelCount, p.RoofType, p.InverterPowerKw),
		Tips: []string{
			"Torque MC4 connectors with the matching tool, not pliers.",
			"Label both ends of every string cable before closing the combiner.",
			"Photograph the grounding connections for the acceptance file.",
		},
		GeneratedBy: GeneratedByFallback,
	}
}

// DeterministicReport renders the stored data as a markdown report.
func DeterministicReport(p *domain.Project, items []domain.ChecklistItem) string {
	label, numStrings := checklist.StringConfig(p.PanelCount)

	var b strings.Builder
	fmt.Fprintf(&b, "# Installation report: %s\n\n", p.Name)
	fmt.Fprintf(&b, "Customer: %s\n", p.CustomerName)
	if p.SiteAddress != "" {
		fmt.Fprintf(&b, "Site: %s\n", p.SiteAddress)
	}

	b.WriteString("\n## Parameters\n\n")
	fmt.Fprintf(&b, "- Array: %d x 550 W panels (%.2f kWp)\n", p.PanelCount, checklist.TotalPanelPowerKw(p.PanelCount))
	fmt.Fprintf(&b, "- Inverter: %.1f kW\n", p.InverterPowerKw)
	fmt.Fprintf(&b, "- Strings: %s (%d)\n", label, numStrings)
	fmt.Fprintf(&b, "- Roof: %s\n", p.RoofType)
	fmt.Fprintf(&b, "- Status: %s\n", p.Status)

	for _, cat := range []domain.ItemCategory{
		domain.CategorySafety, domain.CategoryElectrical, domain.CategoryStructure,
	} {
		wrote := false
		for _, it := range items {
			if it.Category != cat {
				continue
			}
			if !wrote {
				fmt.Fprintf(&b, "\n## %s\n\n", sectionTitle(cat))
				wrote = true
			}
			mark := " "
			if it.IsCompleted {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, it.Title)
		}
	}
	return b.String()
}

func sectionTitle(c domain.ItemCategory) string {
	switch c {
	case domain.CategorySafety:
		return "Safety and grounding"
	case domain.CategoryElectrical:
		return "Electrical materials"
	default:
		return "Mounting structure"
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
