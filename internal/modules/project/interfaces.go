package project

import (
	"context"

	"solartrack/internal/domain"
	"solartrack/internal/repository"
)

// ProjectRepository defines the persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project, items []domain.ChecklistItem) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, f repository.ProjectFilter) ([]domain.Project, int64, error)
	Update(ctx context.Context, p *domain.Project, regenerated []domain.ChecklistItem) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// ChecklistItemRepository defines the persistence operations for generated
// checklist items.
type ChecklistItemRepository interface {
	ListByProject(ctx context.Context, projectID int64) ([]domain.ChecklistItem, error)
	GetForProject(ctx context.Context, projectID, itemID int64) (*domain.ChecklistItem, error)
	SetCompleted(ctx context.Context, itemID int64, done bool) error
	CompletionStats(ctx context.Context, projectID int64) (repository.CompletionStats, error)
}
