package history

import (
	_ "embed"
	"encoding/json"

	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/types"
)

// recordSchema is the canonical shape of a persisted analysis record.
// Legacy records (object-keyed checklist, readinessScore instead of
// finalScore, missing updatedAt) fail it and are dropped from the
// returned list, not from the stored blob.
//
//go:embed analysis_record.schema.json
var recordSchema string

// decodeRecords parses the stored blob and returns the records that pass
// the shape validator, along with how many were dropped. A blob that is
// not a JSON array at all returns a *CorruptionError.
func decodeRecords(blob []byte) ([]types.AnalysisRecord, int, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(blob, &raws); err != nil {
		return nil, 0, &CorruptionError{Cause: err}
	}

	records := make([]types.AnalysisRecord, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		if err := schemas.ValidateJSONString(recordSchema, string(raw)); err != nil {
			dropped++
			continue
		}
		var record types.AnalysisRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			dropped++
			continue
		}
		records = append(records, record)
	}
	return records, dropped, nil
}
