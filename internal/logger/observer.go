package logger

import (
	"github.com/custodia-labs/sercha-complete/internal/transformers"
)

// PipelineObserver logs the diagnostics of one completion cycle.
type PipelineObserver struct {
	cycleID string
}

// NewPipelineObserver creates an observer tagging every event with cycleID.
func NewPipelineObserver(cycleID string) *PipelineObserver {
	return &PipelineObserver{cycleID: cycleID}
}

// SourcesNormalized logs the IDs that passed normalization.
func (o *PipelineObserver) SourcesNormalized(ids []string) {
	Get().Debug().
		Str("cycle_id", o.cycleID).
		Strs("sources", ids).
		Msg("Sources normalized")
}

// StageCompleted logs the shape of the collections before and after a stage.
func (o *PipelineObserver) StageCompleted(r transformers.StageReport) {
	Get().Debug().
		Str("cycle_id", o.cycleID).
		Int("stage", r.Index).
		Str("name", r.Name).
		Int("collections_in", r.Collections).
		Int("items_in", r.Items).
		Int("collections_out", r.OutCollections).
		Int("items_out", r.OutItems).
		Msg("Stage completed")
}
