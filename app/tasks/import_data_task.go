package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/tweet-display/app/archive"
	"github.com/lysyi3m/tweet-display/app/gender"
	"github.com/lysyi3m/tweet-display/app/graphs"
	"github.com/lysyi3m/tweet-display/app/stats"
)

// Graph type tags and descriptions for the aggregates one import produces.
const (
	GraphTypeGenderRetweet = "gender_rt"
	GraphTypeGenderReply   = "gender_reply"
	GraphTypeHourlyStats   = "hourly_stats"
	GraphTypeTweetVolume   = "tweet_volume"
)

const fetchTimeout = 120 * time.Second

// ImportDataTask runs one full archive import: fetch the zip, assemble the
// normalized table, compute every aggregate, and persist each one as a graph.
// Any failure leaves no graph behind for the failing aggregate and surfaces
// through the scheduler's retry/failure channel.
type ImportDataTask struct {
	Task
	URL          string
	httpClient   *http.Client
	assembler    *archive.Assembler
	detector     gender.Detector
	materializer *graphs.Materializer
	userAgent    string
	windowDays   int
}

func NewImportDataTask(url string, httpClient *http.Client, assembler *archive.Assembler,
	detector gender.Detector, materializer *graphs.Materializer, userAgent string, windowDays int) *ImportDataTask {
	return &ImportDataTask{
		Task:         NewTask(TaskTypeImportData, url),
		URL:          url,
		httpClient:   httpClient,
		assembler:    assembler,
		detector:     detector,
		materializer: materializer,
		userAgent:    userAgent,
		windowDays:   windowDays,
	}
}

func (t *ImportDataTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := t.fetchArchive(ctx, t.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch archive: %w", err)
	}

	table, shardErrs, err := t.assembler.Run(data)
	if err != nil {
		return fmt.Errorf("failed to assemble archive: %w", err)
	}

	retweetGender := stats.GenderRolling(table, stats.RetweetPartner, t.windowDays, t.detector)
	if err := t.materializer.Write(GraphTypeGenderRetweet, "retweets by gender", retweetGender); err != nil {
		return err
	}

	replyGender := stats.GenderRolling(table, stats.ReplyPartner, t.windowDays, t.detector)
	if err := t.materializer.Write(GraphTypeGenderReply, "replies by gender", replyGender); err != nil {
		return err
	}

	hourly := stats.HourlyActivity(table)
	if err := t.materializer.Write(GraphTypeHourlyStats, "tweets by hour of day", hourly); err != nil {
		return err
	}

	volume := stats.DailyTotals(table, t.windowDays)
	if err := t.materializer.Write(GraphTypeTweetVolume, "tweets per day", volume); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"source", t.URL,
		"duration", t.GetDuration(),
		"records", table.Len(),
		"shards_failed", len(shardErrs))

	return nil
}

func (t *ImportDataTask) fetchArchive(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
