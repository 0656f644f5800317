package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ GraphRepository = (*graphRepository)(nil)

type graphRepository struct {
	db *DB
}

func NewGraphRepository(db *DB) GraphRepository {
	return &graphRepository{db: db}
}

// CreateGraph inserts an empty graph record and returns its identifier.
func (r *graphRepository) CreateGraph(graphType, description string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO graphs (id, graph_type, graph_description, graph_data, created_at, updated_at)
		VALUES (?, ?, ?, '', ?, ?)
	`, id, graphType, description, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}

	return id, nil
}

// UpdateGraphData fills in the JSON payload of an existing graph record.
func (r *graphRepository) UpdateGraphData(id string, payload string) error {
	result, err := r.db.Exec(`
		UPDATE graphs
		SET graph_data = ?, updated_at = ?
		WHERE id = ?
	`, payload, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update graph data: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("graph %s not found", id)
	}

	return nil
}

// DeleteGraph removes a graph record by identifier.
func (r *graphRepository) DeleteGraph(id string) error {
	_, err := r.db.Exec(`DELETE FROM graphs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete graph: %w", err)
	}
	return nil
}

// GetLatestGraph returns the most recently created graph of the given type,
// or nil when none exists.
func (r *graphRepository) GetLatestGraph(graphType string) (*Graph, error) {
	var graph Graph
	err := r.db.QueryRow(`
		SELECT id, graph_type, graph_description, graph_data, created_at, updated_at
		FROM graphs
		WHERE graph_type = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, graphType).Scan(
		&graph.ID, &graph.Type, &graph.Description, &graph.Data,
		&graph.CreatedAt, &graph.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest graph: %w", err)
	}

	return &graph, nil
}

// GetGraphCount returns the total number of stored graphs.
func (r *graphRepository) GetGraphCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM graphs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get graph count: %w", err)
	}
	return count, nil
}

// ListGraphTypes returns the distinct graph types currently stored.
func (r *graphRepository) ListGraphTypes() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT graph_type FROM graphs ORDER BY graph_type")
	if err != nil {
		return nil, fmt.Errorf("failed to list graph types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var graphType string
		if err := rows.Scan(&graphType); err != nil {
			return nil, fmt.Errorf("failed to scan graph type: %w", err)
		}
		types = append(types, graphType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating graph types: %w", err)
	}

	return types, nil
}
