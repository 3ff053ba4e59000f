package seed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-backend/pkg/logger"
)

// Record is one raw dataset entry.
type Record map[string]any

// LoadDataset parses a dataset file: one JSON object per line (.jsonl), or a
// single JSON array or object (.json). Malformed lines are logged and
// skipped; the load never aborts on a single bad record.
func LoadDataset(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	log := logger.Get()

	if filepath.Ext(path) == ".jsonl" {
		records := []Record{}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var rec Record
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				log.Warn("Skipping malformed dataset line",
					zap.String("file", path),
					zap.Int("line", lineNo),
					zap.Error(err),
				)
				continue
			}
			records = append(records, Normalize(rec))
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
		}
		return records, nil
	}

	// .json: a list of objects, or a single object wrapped as a list.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var list []Record
	if err := json.Unmarshal(data, &list); err == nil {
		records := make([]Record, 0, len(list))
		for _, rec := range list {
			records = append(records, Normalize(rec))
		}
		return records, nil
	}

	var single Record
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return []Record{Normalize(single)}, nil
}

// Normalize prepares a raw record for insertion: the created_at field is
// parsed as RFC 3339 (trailing Z accepted) or stamped with the current time,
// and records arriving without an id get one, since graph nodes are keyed by
// the record id during seeding.
func Normalize(rec Record) Record {
	switch v := rec["created_at"].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			rec["created_at"] = t.UTC()
		} else {
			rec["created_at"] = time.Now().UTC()
		}
	case nil:
		rec["created_at"] = time.Now().UTC()
	}

	if idString(rec) == "" {
		rec["id"] = uuid.NewString()
	}

	return rec
}

// Flatten keeps only primitive-typed fields as graph node properties, keyed
// by mongo_id. Nested objects and lists are dropped.
func Flatten(rec Record) map[string]any {
	props := map[string]any{"mongo_id": idString(rec)}
	for k, v := range rec {
		if k == "id" || k == "_id" {
			continue
		}
		switch v.(type) {
		case string, bool, float64, int, int64, time.Time:
			props[k] = v
		}
	}
	return props
}

func idString(rec Record) string {
	switch v := rec["id"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
