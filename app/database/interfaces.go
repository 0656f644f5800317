package database

// GraphRepository defines the persistence surface for graph records. Creation
// and payload fill are separate steps so a failed fill can be compensated by
// deleting the half-written record.
type GraphRepository interface {
	CreateGraph(graphType, description string) (string, error)
	UpdateGraphData(id string, payload string) error
	DeleteGraph(id string) error

	GetLatestGraph(graphType string) (*Graph, error)
	GetGraphCount() (int, error)
	ListGraphTypes() ([]string, error)
}
