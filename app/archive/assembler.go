package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// ManifestPath is the fixed location of the shard index inside the archive.
const ManifestPath = "data/js/tweet_index.js"

type manifestEntry struct {
	FileName string `json:"file_name"`
}

// Assembler reads a whole archive zip into one normalized table.
type Assembler struct {
	resolver *Resolver
}

func NewAssembler(resolver *Resolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// Run enumerates the shards listed in the archive manifest, reads each one,
// concatenates the fragments into a single table sorted descending by UTC
// time, and normalizes the boolean flags so that false becomes absent.
//
// Policy: a shard that fails to parse is skipped and reported in the returned
// ShardError slice; the run itself fails only when the manifest is unreadable
// or no shard at all could be read.
func (a *Assembler) Run(zipBytes []byte) (*Table, []ShardError, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, nil, &FormatError{Path: "archive", Reason: err.Error()}
	}

	manifest, err := a.readManifest(zr)
	if err != nil {
		return nil, nil, err
	}

	var records []Record
	var shardErrs []ShardError
	parsed := 0

	for _, entry := range manifest {
		recs, err := a.readShardFile(zr, entry.FileName)
		if err != nil {
			slog.Warn("Skipping malformed shard", "shard", entry.FileName, "error", err)
			shardErrs = append(shardErrs, ShardError{Shard: entry.FileName, Err: err})
			continue
		}
		records = append(records, recs...)
		parsed++
	}

	if len(manifest) > 0 && parsed == 0 {
		return nil, shardErrs, fmt.Errorf("no readable shard in archive: all %d failed", len(manifest))
	}

	// Stable sort keeps shard order for equal timestamps, so re-running on the
	// same bytes yields the same table.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UTCTime.After(records[j].UTCTime)
	})

	normalizeFlags(records)

	return &Table{Records: records}, shardErrs, nil
}

func (a *Assembler) readManifest(zr *zip.Reader) ([]manifestEntry, error) {
	data, err := readEntry(zr, ManifestPath)
	if err != nil {
		return nil, &FormatError{Path: ManifestPath, Reason: err.Error()}
	}

	payload, ok := stripHeaderLine(data)
	if !ok {
		return nil, &FormatError{Path: ManifestPath, Reason: "missing header line"}
	}

	var manifest []manifestEntry
	if err := json.Unmarshal(payload, &manifest); err != nil {
		return nil, &FormatError{Path: ManifestPath, Reason: err.Error()}
	}

	return manifest, nil
}

func (a *Assembler) readShardFile(zr *zip.Reader, name string) ([]Record, error) {
	data, err := readEntry(zr, name)
	if err != nil {
		return nil, &FormatError{Path: name, Reason: err.Error()}
	}
	return ReadShard(data, a.resolver)
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// normalizeFlags collapses false flags to absent. Downstream consumers treat
// flag presence as "event occurred" and never need a false-but-present marker.
func normalizeFlags(records []Record) {
	for i := range records {
		records[i].HasHashtag = dropFalse(records[i].HasHashtag)
		records[i].HasMedia = dropFalse(records[i].HasMedia)
		records[i].HasURL = dropFalse(records[i].HasURL)
	}
}

func dropFalse(flag *bool) *bool {
	if flag != nil && !*flag {
		return nil
	}
	return flag
}
