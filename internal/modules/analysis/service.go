package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"solartrack/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	projects ProjectReader
	items    ChecklistReader
	ai       Completer
	logger   *zap.Logger
}

func NewService(projects ProjectReader, items ChecklistReader, ai Completer, logger *zap.Logger) *Service {
	return &Service{
		projects: projects,
		items:    items,
		ai:       ai,
		logger:   logger.Named("analysis"),
	}
}

// AnalyzeProject asks the model for an efficiency analysis and falls back
// to the deterministic one on any failure. The only error it can return is
// a missing project.
func (s *Service) AnalyzeProject(ctx context.Context, projectID int64) (*AnalysisResult, error) {
	p, items, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}

	content, err := s.ai.Complete(ctx, analysisSystemPrompt, analysisUserPrompt(p, completedPercent(items)))
	if err != nil {
		s.logger.Info("using deterministic analysis",
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return DeterministicAnalysis(p), nil
	}

	res, err := parseAnalysis(content)
	if err != nil {
		s.logger.Warn("unparseable model output, using deterministic analysis",
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return DeterministicAnalysis(p), nil
	}
	return res, nil
}

// BuildReport produces the installation report, preferring model prose and
// degrading to the rendered stored data.
func (s *Service) BuildReport(ctx context.Context, projectID int64) (*ReportResult, error) {
	p, items, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}

	content, err := s.ai.Complete(ctx, reportSystemPrompt, reportUserPrompt(p, items))
	if err != nil || strings.TrimSpace(content) == "" {
		if err != nil {
			s.logger.Info("using deterministic report",
				zap.Int64("project_id", projectID),
				zap.Error(err))
		}
		return &ReportResult{
			Report:      DeterministicReport(p, items),
			GeneratedBy: GeneratedByFallback,
		}, nil
	}

	return &ReportResult{Report: content, GeneratedBy: GeneratedByAI}, nil
}

func (s *Service) load(ctx context.Context, projectID int64) (*domain.Project, []domain.ChecklistItem, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	items, err := s.items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	return p, items, nil
}

func completedPercent(items []domain.ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.IsCompleted {
			done++
		}
	}
	return done * 100 / len(items)
}

// parseAnalysis reads the JSON object out of model output that may wrap it
// in markdown fences or surrounding prose.
func parseAnalysis(content string) (*AnalysisResult, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	var res AnalysisResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, err
	}
	if res.CostNote == "" && len(res.Recommendations) == 0 && len(res.Tips) == 0 {
		return nil, errors.New("model returned an empty analysis")
	}

	res.Score = clampScore(res.Score)
	res.GeneratedBy = GeneratedByAI
	return &res, nil
}

// extractJSONObject returns the first balanced top-level {...} in s.
func extractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", errors.New("no JSON object in model output")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return "", errors.New("malformed JSON object in model output")
				}
				return candidate, nil
			}
		}
	}
	return "", errors.New("unterminated JSON object in model output")
}
