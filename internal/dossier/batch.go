package dossier

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/dossier-cli/internal/model"
)

// ParseBatch decodes a result batch from JSON. Both the bare-array form and
// the orchestrator's envelope form ({"results": [...], "query": "..."}) are
// accepted.
func ParseBatch(r io.Reader) ([]model.RawResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "dossier: read batch")
	}

	var results []model.RawResult
	if err := json.Unmarshal(raw, &results); err == nil {
		return results, nil
	}

	var envelope struct {
		Query   string            `json:"query"`
		Results []model.RawResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, eris.Wrap(err, "dossier: parse batch")
	}
	if envelope.Query != "" {
		for i := range envelope.Results {
			if envelope.Results[i].Query == "" {
				envelope.Results[i].Query = envelope.Query
			}
		}
	}
	return envelope.Results, nil
}
