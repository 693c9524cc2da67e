package domain

import "time"

type ItemCategory string

const (
	CategorySafety     ItemCategory = "safety"
	CategoryElectrical ItemCategory = "electrical-materials"
	CategoryStructure  ItemCategory = "structure"
)

// ChecklistItem is one generated bill-of-materials/safety line owned by a
// project. Title, description and category are fixed at creation;
// IsCompleted is the only field that changes afterwards.
type ChecklistItem struct {
	ID          int64        `json:"id"`
	ProjectID   int64        `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    ItemCategory `json:"category"`
	IsCompleted bool         `json:"is_completed"`
	CreatedAt   time.Time    `json:"created_at"`
}
