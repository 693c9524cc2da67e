package project

type CreateProjectRequest struct {
	Name            string  `json:"name" binding:"required,min=3,max=120"`
	CustomerName    string  `json:"customer_name" binding:"required,min=2,max=120"`
	SiteAddress     string  `json:"site_address" binding:"max=300"`
	PanelCount      int     `json:"panel_count" binding:"required,gte=1,lte=200"`
	InverterPowerKw float64 `json:"inverter_power_kw" binding:"required,gte=3,lte=100"`
	RoofType        string  `json:"roof_type" binding:"required"`
	Notes           string  `json:"notes"`
}

// UpdateProjectRequest is a partial update; nil fields are left untouched.
// Changing any of the three generator inputs (panel count, inverter power,
// roof type) replaces the stored checklist with a freshly generated one.
type UpdateProjectRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=3,max=120"`
	CustomerName    *string  `json:"customer_name" binding:"omitempty,min=2,max=120"`
	SiteAddress     *string  `json:"site_address" binding:"omitempty,max=300"`
	PanelCount      *int     `json:"panel_count" binding:"omitempty,gte=1,lte=200"`
	InverterPowerKw *float64 `json:"inverter_power_kw" binding:"omitempty,gte=3,lte=100"`
	RoofType        *string  `json:"roof_type"`
	Status          *string  `json:"status"`
	Notes           *string  `json:"notes"`
}

type ListProjectsQuery struct {
	Status   string `form:"status"`
	RoofType string `form:"roof_type"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}

// normalize clamps paging values into the supported range. Idempotent, so
// handler and service may both call it.
func (q *ListProjectsQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}
}

// Progress summarizes checklist completion for a project.
type Progress struct {
	TotalItems int `json:"total_items"`
	DoneItems  int `json:"done_items"`
	Percent    int `json:"percent"`
}
