package graphs

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/tweet-display/app/database"
)

// Materializer serializes an aggregated table to a row-oriented JSON payload
// and hands it to the graph repository.
type Materializer struct {
	repo database.GraphRepository
}

func NewMaterializer(repo database.GraphRepository) *Materializer {
	return &Materializer{repo: repo}
}

// Write persists rows under graphType. The record is created first and filled
// in afterwards; if the fill fails the half-written record is deleted so a
// failed run leaves no empty graph behind.
func (m *Materializer) Write(graphType, description string, rows any) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode graph payload: %w", err)
	}

	id, err := m.repo.CreateGraph(graphType, description)
	if err != nil {
		return fmt.Errorf("failed to create graph record: %w", err)
	}

	if err := m.repo.UpdateGraphData(id, string(payload)); err != nil {
		if delErr := m.repo.DeleteGraph(id); delErr != nil {
			slog.Error("Failed to clean up graph record", "graph_id", id, "type", graphType, "error", delErr)
		}
		return fmt.Errorf("failed to store graph payload: %w", err)
	}

	slog.Debug("Graph persisted", "type", graphType, "graph_id", id, "bytes", len(payload))
	return nil
}
