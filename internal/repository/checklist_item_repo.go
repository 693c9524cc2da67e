package repository

import (
	"context"
	"time"

	"solartrack/internal/domain"

	"gorm.io/gorm"
)

type ChecklistItemRepository struct {
	db *gorm.DB
}

func NewChecklistItemRepository(db *gorm.DB) *ChecklistItemRepository {
	return &ChecklistItemRepository{db: db}
}

type checklistItemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ProjectID   int64     `gorm:"column:project_id;index:idx_items_project"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category"`
	IsCompleted bool      `gorm:"column:is_completed"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (checklistItemModel) TableName() string { return "checklist_items" }

func toDomainChecklistItem(m checklistItemModel) *domain.ChecklistItem {
	return &domain.ChecklistItem{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		Category:    domain.ItemCategory(m.Category),
		IsCompleted: m.IsCompleted,
		CreatedAt:   m.CreatedAt,
	}
}

func toChecklistItemModel(it *domain.ChecklistItem) checklistItemModel {
	return checklistItemModel{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Title:       it.Title,
		Description: it.Description,
		Category:    string(it.Category),
		IsCompleted: it.IsCompleted,
		CreatedAt:   it.CreatedAt,
	}
}

// ListByProject returns the checklist in generation order.
func (r *ChecklistItemRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.ChecklistItem, error) {
	var rows []checklistItemModel
	tx := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ChecklistItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainChecklistItem(m))
	}
	return out, nil
}

// GetForProject fetches one item scoped to its owning project, so an item
// ID from another project behaves like a missing record.
func (r *ChecklistItemRepository) GetForProject(ctx context.Context, projectID, itemID int64) (*domain.ChecklistItem, error) {
	var m checklistItemModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", itemID, projectID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainChecklistItem(m), nil
}

func (r *ChecklistItemRepository) SetCompleted(ctx context.Context, itemID int64, done bool) error {
	res := r.db.WithContext(ctx).
		Model(&checklistItemModel{}).
		Where("id = ?", itemID).
		Update("is_completed", done)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type CompletionStats struct {
	Total int64
	Done  int64
}

// CompletionStats counts a project's items and how many are completed, in
// one query. Used to derive the project status after a toggle.
func (r *ChecklistItemRepository) CompletionStats(ctx context.Context, projectID int64) (CompletionStats, error) {
	var s CompletionStats
	q := `
SELECT COUNT(1) AS total,
       COALESCE(SUM(CASE WHEN is_completed THEN 1 ELSE 0 END), 0) AS done
FROM checklist_items
WHERE project_id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, projectID).Scan(&s)
	if tx.Error != nil {
		return CompletionStats{}, tx.Error
	}
	return s, nil
}
