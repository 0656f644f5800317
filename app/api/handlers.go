package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/tweet-display/app/archive"
	"github.com/lysyi3m/tweet-display/app/cfg"
	"github.com/lysyi3m/tweet-display/app/database"
	"github.com/lysyi3m/tweet-display/app/gender"
	"github.com/lysyi3m/tweet-display/app/graphs"
	"github.com/lysyi3m/tweet-display/app/tasks"
)

func NewHandler(graphRepo database.GraphRepository, scheduler tasks.TaskSchedulerInterface,
	httpClient *http.Client, assembler *archive.Assembler, detector gender.Detector,
	materializer *graphs.Materializer) *Handler {
	return &Handler{
		graphRepo:    graphRepo,
		scheduler:    scheduler,
		httpClient:   httpClient,
		assembler:    assembler,
		detector:     detector,
		materializer: materializer,
	}
}

// GetGraph serves the latest persisted payload for a graph type. The payload
// is stored as ready-to-render JSON, so it is passed through untouched.
func (h *Handler) GetGraph(c *gin.Context) {
	graphType := c.Param("type")
	if graphType == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	graph, err := h.graphRepo.GetLatestGraph(graphType)
	if err != nil {
		slog.Error("Database error", "operation", "get_latest_graph", "type", graphType, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if graph == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No graph of this type has been imported yet"})
		return
	}

	c.Header("X-Graph-Description", graph.Description)
	c.Header("X-Graph-Updated", graph.UpdatedAt.Format(time.RFC3339))
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(graph.Data))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if graphCount, err := h.graphRepo.GetGraphCount(); err == nil {
		health["graphs"] = graphCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	appCfg := cfg.Get()

	response := map[string]interface{}{
		"version":             appCfg.Version,
		"rolling_window_days": appCfg.RollingWindowDays,
	}

	if graphCount, err := h.graphRepo.GetGraphCount(); err == nil {
		response["graphs"] = graphCount
	}

	if types, err := h.graphRepo.ListGraphTypes(); err == nil {
		response["graph_types"] = types
	}

	c.JSON(http.StatusOK, response)
}

// APIImportData triggers an asynchronous archive import. The URL may come
// from the request body or fall back to the configured archive URL. The
// response only acknowledges that the import was queued; success or failure
// is reported through the task log and the absence/presence of graphs.
func (h *Handler) APIImportData(c *gin.Context) {
	appCfg := cfg.Get()

	var req importRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	url := req.URL
	if url == "" {
		url = appCfg.ArchiveURL
	}
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No archive URL provided and none configured"})
		return
	}

	task := tasks.NewImportDataTask(url, h.httpClient, h.assembler, h.detector, h.materializer,
		appCfg.UserAgent, appCfg.RollingWindowDays)

	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Failed to enqueue import task", "source", url, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Import queue is full, try again later"})
		return
	}

	slog.Info("Import queued", "source", url, "task_id", task.GetID())

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "queued",
		"task_id": task.GetID(),
	})
}
