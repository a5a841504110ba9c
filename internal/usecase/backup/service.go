package backup

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/eslsoft/blinkvocab/internal/infrastructure/database"
)

const formatVersion = 1

var errEmptyBackup = errors.New("backup: input contains no header line")

// Service exports and restores the full KV contents (profile snapshot plus
// durable word cache) as versioned NDJSON.
type Service struct {
	store *database.Store
}

// NewService constructs a backup service bound to the KV store.
func NewService(store *database.Store) *Service {
	return &Service{store: store}
}

type header struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
}

type record struct {
	Namespace string          `json:"ns"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value,omitempty"`
	// Raw carries values that are not valid JSON documents.
	Raw string `json:"raw,omitempty"`
}

// Export writes a header line followed by one NDJSON record per stored
// entry, returning the record count.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	entries, err := s.store.Entries(ctx)
	if err != nil {
		return 0, fmt.Errorf("backup: read entries: %w", err)
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(header{Version: formatVersion, ExportedAt: time.Now().UTC()}); err != nil {
		return 0, fmt.Errorf("backup: write header: %w", err)
	}

	for _, entry := range entries {
		rec := record{Namespace: entry.Namespace, Key: entry.Key}
		if json.Valid(entry.Value) {
			rec.Value = json.RawMessage(entry.Value)
		} else {
			rec.Raw = base64.StdEncoding.EncodeToString(entry.Value)
		}
		if err := enc.Encode(rec); err != nil {
			return 0, fmt.Errorf("backup: write entry %s/%s: %w", entry.Namespace, entry.Key, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("backup: flush: %w", err)
	}
	return len(entries), nil
}

// Import restores every record from a backup stream, upserting into the KV
// store. Existing entries with matching keys are overwritten.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("backup: read header: %w", err)
		}
		return 0, errEmptyBackup
	}
	var h header
	if err := json.Unmarshal(scanner.Bytes(), &h); err != nil {
		return 0, fmt.Errorf("backup: decode header: %w", err)
	}
	if h.Version != formatVersion {
		return 0, fmt.Errorf("backup: unsupported format version %d", h.Version)
	}

	count := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return count, fmt.Errorf("backup: decode record %d: %w", count+1, err)
		}

		value := []byte(rec.Value)
		if rec.Raw != "" {
			decoded, err := base64.StdEncoding.DecodeString(rec.Raw)
			if err != nil {
				return count, fmt.Errorf("backup: decode raw value for %s/%s: %w", rec.Namespace, rec.Key, err)
			}
			value = decoded
		}

		if err := s.store.Put(ctx, rec.Namespace, rec.Key, value); err != nil {
			return count, fmt.Errorf("backup: restore %s/%s: %w", rec.Namespace, rec.Key, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("backup: scan: %w", err)
	}
	return count, nil
}
