package api

import (
	"net/http"

	"github.com/lysyi3m/tweet-display/app/archive"
	"github.com/lysyi3m/tweet-display/app/database"
	"github.com/lysyi3m/tweet-display/app/gender"
	"github.com/lysyi3m/tweet-display/app/graphs"
	"github.com/lysyi3m/tweet-display/app/tasks"
)

type Handler struct {
	graphRepo    database.GraphRepository
	scheduler    tasks.TaskSchedulerInterface
	httpClient   *http.Client
	assembler    *archive.Assembler
	detector     gender.Detector
	materializer *graphs.Materializer
}

type importRequest struct {
	URL string `json:"url"`
}
