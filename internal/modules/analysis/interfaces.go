package analysis

import (
	"context"

	"solartrack/internal/domain"
)

// Completer is the slice of the AI client this module depends on. Any
// returned error means "use the deterministic fallback", never "fail the
// request".
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ProjectReader provides read access to projects.
type ProjectReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}

// ChecklistReader provides read access to a project's checklist.
type ChecklistReader interface {
	ListByProject(ctx context.Context, projectID int64) ([]domain.ChecklistItem, error)
}
