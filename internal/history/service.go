package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/analyzer"
	"github.com/jonathan/placement-prep/internal/types"
)

// LoadResult is the outcome of reading the persisted history.
type LoadResult struct {
	Records []types.AnalysisRecord
	// Dropped counts records removed by the shape validator. The stored
	// blob keeps them until the next write.
	Dropped int
	// Corrupted is set when the whole blob failed to parse and the
	// history was treated as empty.
	Corrupted bool
}

// Service implements the analyze/history workflow over an injected Store:
// submit a JD for analysis, list and fetch past analyses, and toggle
// per-skill confidence with score recomputation. Writes always rewrite
// the whole collection; the service assumes a single writer.
type Service struct {
	store Store
}

// NewService creates a Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// LoadHistory returns the persisted records, newest first. An unreadable
// blob yields an empty result with Corrupted set rather than an error, so
// a damaged cache never blocks fresh analyses.
func (s *Service) LoadHistory(ctx context.Context) (LoadResult, error) {
	blob, err := s.store.Load(ctx)
	if err != nil {
		return LoadResult{}, err
	}
	if len(blob) == 0 {
		return LoadResult{Records: []types.AnalysisRecord{}}, nil
	}

	records, dropped, err := decodeRecords(blob)
	if err != nil {
		var corrupt *CorruptionError
		if errors.As(err, &corrupt) {
			log.Printf("[history] %v; continuing with empty history", err)
			return LoadResult{Records: []types.AnalysisRecord{}, Corrupted: true}, nil
		}
		return LoadResult{}, err
	}
	if dropped > 0 {
		log.Printf("[history] dropped %d malformed record(s) from view", dropped)
	}
	return LoadResult{Records: records, Dropped: dropped}, nil
}

// Get returns the record with the given ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*types.AnalysisRecord, error) {
	result, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result.Records {
		if result.Records[i].ID == id {
			return &result.Records[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Submit analyzes one JD input, prepends the resulting record to the
// history and persists the whole collection. Empty JD text (after
// trimming) is rejected with a *ValidationError and nothing is persisted.
func (s *Service) Submit(ctx context.Context, company, role, jdText string) (*types.AnalysisRecord, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, &ValidationError{Field: "jdText", Message: "job description text is required"}
	}

	record := analyzer.Analyze(company, role, jdText)

	result, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}

	records := append([]types.AnalysisRecord{*record}, result.Records...)
	if err := s.save(ctx, records); err != nil {
		return nil, err
	}
	return record, nil
}

// ToggleSkillConfidence flips one skill between "know" and "practice" on
// the identified record, recomputes the final score from the stored base
// score, bumps updatedAt and re-persists the collection with the record
// kept in place. A skill absent from the confidence map but present in
// the extracted skills defaults to "practice" before flipping.
func (s *Service) ToggleSkillConfidence(ctx context.Context, id uuid.UUID, skill string) (*types.AnalysisRecord, error) {
	result, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range result.Records {
		if result.Records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	record := &result.Records[idx]
	current, ok := record.SkillConfidenceMap[skill]
	if !ok {
		if !record.HasSkill(skill) {
			return nil, &SkillNotFoundError{ID: id, Skill: skill}
		}
		current = types.ConfidencePractice
	}

	if record.SkillConfidenceMap == nil {
		record.SkillConfidenceMap = make(map[string]types.Confidence)
	}
	if current == types.ConfidenceKnow {
		record.SkillConfidenceMap[skill] = types.ConfidencePractice
	} else {
		record.SkillConfidenceMap[skill] = types.ConfidenceKnow
	}

	record.FinalScore = analyzer.RecomputeFinalScore(record.BaseScore, record.SkillConfidenceMap)
	record.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, result.Records); err != nil {
		return nil, err
	}

	updated := *record
	return &updated, nil
}

func (s *Service) save(ctx context.Context, records []types.AnalysisRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	return s.store.Save(ctx, blob)
}
