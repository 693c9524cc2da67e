package repository

import (
	"context"
	"time"

	"solartrack/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name;uniqueIndex:idx_projects_name"`
	CustomerName    string    `gorm:"column:customer_name"`
	SiteAddress     *string   `gorm:"column:site_address"`
	PanelCount      int       `gorm:"column:panel_count"`
	InverterPowerKw float64   `gorm:"column:inverter_power_kw"`
	RoofType        string    `gorm:"column:roof_type"`
	Status          string    `gorm:"column:status"`
	Notes           *string   `gorm:"column:notes"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	var addr, notes string
	if m.SiteAddress != nil {
		addr = *m.SiteAddress
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Project{
		ID:              m.ID,
		Name:            m.Name,
		CustomerName:    m.CustomerName,
		SiteAddress:     addr,
		PanelCount:      m.PanelCount,
		InverterPowerKw: m.InverterPowerKw,
		RoofType:        domain.RoofType(m.RoofType),
		Status:          domain.ProjectStatus(m.Status),
		Notes:           notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	var addr, notes *string
	if p.SiteAddress != "" {
		v := p.SiteAddress
		addr = &v
	}
	if p.Notes != "" {
		v := p.Notes
		notes = &v
	}

	return projectModel{
		ID:              p.ID,
		Name:            p.Name,
		CustomerName:    p.CustomerName,
		SiteAddress:     addr,
		PanelCount:      p.PanelCount,
		InverterPowerKw: p.InverterPowerKw,
		RoofType:        string(p.RoofType),
		Status:          string(p.Status),
		Notes:           notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// Create stores the project and its generated checklist in one transaction
// and writes the assigned IDs and timestamps back into the arguments.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project, items []domain.ChecklistItem) error {
	m := toProjectModel(p)
	rows := make([]checklistItemModel, len(items))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i := range items {
			rows[i] = toChecklistItemModel(&items[i])
			rows[i].ProjectID = m.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	*p = *toDomainProject(m)
	for i := range rows {
		items[i] = *toDomainChecklistItem(rows[i])
	}
	p.Items = items
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProject(m), nil
}

type ProjectFilter struct {
	Status   string
	RoofType string
	Limit    int
	Offset   int
}

// List returns a page of projects plus the total count matching the filter.
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter) ([]domain.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&projectModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoofType != "" {
		q = q.Where("roof_type = ?", f.RoofType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []projectModel
	tx := q.Order("created_at DESC, id DESC").Limit(f.Limit).Offset(f.Offset).Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Project, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProject(m))
	}
	return out, total, nil
}

// Update saves the project row. When regenerated is non-nil the stored
// checklist is replaced with it inside the same transaction, so a failure
// never leaves the project describing one installation and its checklist
// another.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project, regenerated []domain.ChecklistItem) error {
	m := toProjectModel(p)
	rows := make([]checklistItemModel, len(regenerated))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if regenerated == nil {
			return nil
		}
		if err := tx.Where("project_id = ?", p.ID).Delete(&checklistItemModel{}).Error; err != nil {
			return err
		}
		for i := range regenerated {
			rows[i] = toChecklistItemModel(&regenerated[i])
			rows[i].ProjectID = p.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	*p = *toDomainProject(m)
	if regenerated != nil {
		for i := range rows {
			regenerated[i] = *toDomainChecklistItem(rows[i])
		}
		p.Items = regenerated
	}
	return nil
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := r.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the project and its checklist items together.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&checklistItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&projectModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
