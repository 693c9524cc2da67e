package domain

import "time"

type RoofType string

const (
	RoofCeramic     RoofType = "ceramic"
	RoofMetal       RoofType = "metal"
	RoofFiberCement RoofType = "fiber-cement"
	RoofGroundMount RoofType = "ground-mount"
)

// validRoofTypes is the closed set accepted at the API boundary. The
// checklist generator itself tolerates unknown values (empty structure
// subset) so that a project never loses its safety/electrical items.
var validRoofTypes = map[RoofType]bool{
	RoofCeramic:     true,
	RoofMetal:       true,
	RoofFiberCement: true,
	RoofGroundMount: true,
}

// ParseRoofType validates a wire-format roof type string.
func ParseRoofType(s string) (RoofType, bool) {
	rt := RoofType(s)
	return rt, validRoofTypes[rt]
}

type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in-progress"
	StatusCompleted  ProjectStatus = "completed"
)

var validProjectStatuses = map[ProjectStatus]bool{
	StatusPlanning:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

// ParseProjectStatus validates a wire-format status string.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	st := ProjectStatus(s)
	return st, validProjectStatuses[st]
}

type Project struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	CustomerName    string        `json:"customer_name"`
	SiteAddress     string        `json:"site_address,omitempty"`
	PanelCount      int           `json:"panel_count"`
	InverterPowerKw float64       `json:"inverter_power_kw"`
	RoofType        RoofType      `json:"roof_type"`
	Status          ProjectStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Populated by the service when fetched with items.
	Items []ChecklistItem `json:"items,omitempty"`
}
