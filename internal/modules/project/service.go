package project

import (
	"context"
	"errors"
	"strings"

	"solartrack/internal/checklist"
	"solartrack/internal/domain"
	"solartrack/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	projects ProjectRepository
	items    ChecklistItemRepository
}

func NewService(projects ProjectRepository, items ChecklistItemRepository) *Service {
	return &Service{projects: projects, items: items}
}

// CreateProject validates the input, generates the checklist and stores
// both together. The returned project carries its items with assigned IDs.
func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	roof, ok := domain.ParseRoofType(req.RoofType)
	if !ok {
		return nil, ErrValidation
	}

	name := strings.TrimSpace(req.Name)
	customer := strings.TrimSpace(req.CustomerName)
	if name == "" || customer == "" {
		return nil, ErrValidation
	}

	p := &domain.Project{
		Name:            name,
		CustomerName:    customer,
		SiteAddress:     strings.TrimSpace(req.SiteAddress),
		PanelCount:      req.PanelCount,
		InverterPowerKw: req.InverterPowerKw,
		RoofType:        roof,
		Status:          domain.StatusPlanning,
		Notes:           req.Notes,
	}
	items := buildItems(p.PanelCount, p.InverterPowerKw, p.RoofType)

	if err := s.projects.Create(ctx, p, items); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := s.items.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context, q ListProjectsQuery) ([]domain.Project, int64, error) {
	if q.Status != "" {
		if _, ok := domain.ParseProjectStatus(q.Status); !ok {
			return nil, 0, ErrValidation
		}
	}
	if q.RoofType != "" {
		if _, ok := domain.ParseRoofType(q.RoofType); !ok {
			return nil, 0, ErrValidation
		}
	}
	q.normalize()

	f := repository.ProjectFilter{
		Status:   q.Status,
		RoofType: q.RoofType,
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	}
	return s.projects.List(ctx, f)
}

// UpdateProject applies a partial update. When panel count, inverter power
// or roof type change, the stored checklist no longer describes the
// installation, so it is regenerated and replaced in the same transaction
// and completion-derived status falls back to planning unless the request
// set a status explicitly.
func (s *Service) UpdateProject(ctx context.Context, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		p.Name = name
	}
	if req.CustomerName != nil {
		customer := strings.TrimSpace(*req.CustomerName)
		if customer == "" {
			return nil, ErrValidation
		}
		p.CustomerName = customer
	}
	if req.SiteAddress != nil {
		p.SiteAddress = strings.TrimSpace(*req.SiteAddress)
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Status != nil {
		st, ok := domain.ParseProjectStatus(*req.Status)
		if !ok {
			return nil, ErrValidation
		}
		p.Status = st
	}

	regen := false
	if req.PanelCount != nil && *req.PanelCount != p.PanelCount {
		p.PanelCount = *req.PanelCount
		regen = true
	}
	if req.InverterPowerKw != nil && *req.InverterPowerKw != p.InverterPowerKw {
		p.InverterPowerKw = *req.InverterPowerKw
		regen = true
	}
	if req.RoofType != nil {
		rt, ok := domain.ParseRoofType(*req.RoofType)
		if !ok {
			return nil, ErrValidation
		}
		if rt != p.RoofType {
			p.RoofType = rt
			regen = true
		}
	}

	var regenerated []domain.ChecklistItem
	if regen {
		regenerated = buildItems(p.PanelCount, p.InverterPowerKw, p.RoofType)
		if req.Status == nil {
			p.Status = domain.StatusPlanning
		}
	}

	if err := s.projects.Update(ctx, p, regenerated); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	if regenerated == nil {
		items, err := s.items.ListByProject(ctx, id)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return p, nil
}

func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type ToggleResult struct {
	Item     domain.ChecklistItem `json:"item"`
	Status   domain.ProjectStatus `json:"project_status"`
	Progress Progress             `json:"progress"`
}

// ToggleItem flips one item's completion flag and re-derives the project
// status from the new completion counts.
func (s *Service) ToggleItem(ctx context.Context, projectID, itemID int64) (*ToggleResult, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	it, err := s.items.GetForProject(ctx, projectID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	it.IsCompleted = !it.IsCompleted
	if err := s.items.SetCompleted(ctx, itemID, it.IsCompleted); err != nil {
		return nil, err
	}

	stats, err := s.items.CompletionStats(ctx, projectID)
	if err != nil {
		return nil, err
	}

	status := statusForCompletion(stats)
	if status != p.Status {
		if err := s.projects.UpdateStatus(ctx, projectID, string(status)); err != nil {
			return nil, err
		}
	}

	return &ToggleResult{
		Item:     *it,
		Status:   status,
		Progress: progressFrom(stats),
	}, nil
}

// buildItems converts generator output into persistable items with the
// default completion state.
func buildItems(panelCount int, inverterPowerKw float64, roof domain.RoofType) []domain.ChecklistItem {
	generated := checklist.Generate(panelCount, inverterPowerKw, roof)
	items := make([]domain.ChecklistItem, len(generated))
	for i, g := range generated {
		items[i] = domain.ChecklistItem{
			Title:       g.Title,
			Description: g.Description,
			Category:    g.Category,
		}
	}
	return items
}

// statusForCompletion derives project status after a toggle: untouched
// checklist means planning, a fully completed one means completed.
// Concurrent toggles may briefly disagree; the next toggle corrects it.
func statusForCompletion(s repository.CompletionStats) domain.ProjectStatus {
	switch {
	case s.Done == 0:
		return domain.StatusPlanning
	case s.Done == s.Total:
		return domain.StatusCompleted
	default:
		return domain.StatusInProgress
	}
}

func progressFrom(s repository.CompletionStats) Progress {
	p := Progress{TotalItems: int(s.Total), DoneItems: int(s.Done)}
	if s.Total > 0 {
		p.Percent = int(s.Done * 100 / s.Total)
	}
	return p
}

// progressOf summarizes completion over already loaded items.
func progressOf(items []domain.ChecklistItem) Progress {
	p := Progress{TotalItems: len(items)}
	for _, it := range items {
		if it.IsCompleted {
			p.DoneItems++
		}
	}
	if p.TotalItems > 0 {
		p.Percent = p.DoneItems * 100 / p.TotalItems
	}
	return p
}

// isUniqueViolation detects a duplicate project name on both supported
// drivers: SQLSTATE 23505 from postgres, message match on the sqlite
// driver used in development.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
