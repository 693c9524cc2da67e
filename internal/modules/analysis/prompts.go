package analysis

import (
	"fmt"
	"strings"

	"solartrack/internal/checklist"
	"solartrack/internal/domain"
)

const analysisSystemPrompt = `You are a senior solar PV installation engineer reviewing residential projects. Respond with a single JSON object and nothing else: {"score": <integer 0-100>, "recommendations": [<strings>], "cost_note": <string>, "tips": [<strings>]}.`

const reportSystemPrompt = `You are a senior solar PV installation engineer writing a short installation report for a field crew. Respond in plain markdown, at most 400 words, with sections for site parameters, electrical configuration and mounting work.`

// analysisUserPrompt renders the facts the model scores. The string
// configuration comes from the generator so the prompt can never disagree
// with the stored checklist.
func analysisUserPrompt(p *domain.Project, progressPercent int) string {
	label, numStrings := checklist.StringConfig(p.PanelCount)

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", p.Name)
	fmt.Fprintf(&b, "Panels: %d x 550 W (%.2f kWp)\n", p.PanelCount, checklist.TotalPanelPowerKw(p.PanelCount))
	fmt.Fprintf(&b, "Inverter: %.1f kW\n", p.InverterPowerKw)
	fmt.Fprintf(&b, "String configuration: %s (%d strings)\n", label, numStrings)
	fmt.Fprintf(&b, "Roof type: %s\n", p.RoofType)
	fmt.Fprintf(&b, "Checklist progress: %d%%\n", progressPercent)
	b.WriteString("Rate the configuration efficiency and give practical recommendations.")
	return b.String()
}

func reportUserPrompt(p *domain.Project, items []domain.ChecklistItem) string {
	label, numStrings := checklist.StringConfig(p.PanelCount)

	var b strings.Builder
	b.WriteString("Write the installation report for this project.\n")
	fmt.Fprintf(&b, "Name: %s\nCustomer: %s\n", p.Name, p.CustomerName)
	if p.SiteAddress != "" {
		fmt.Fprintf(&b, "Site: %s\n", p.SiteAddress)
	}
	fmt.Fprintf(&b, "Panels: %d x 550 W (%.2f kWp), inverter %.1f kW, strings %s (%d), roof %s\n",
		p.PanelCount, checklist.TotalPanelPowerKw(p.PanelCount), p.InverterPowerKw, label, numStrings, p.RoofType)
	b.WriteString("Bill of materials:\n")
	for _, it := range items {
		mark := " "
		if it.IsCompleted {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s (%s)\n", mark, it.Title, it.Category)
	}
	return b.String()
}
