package sheet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

// ErrNoSeedFile is returned by LoadRecords when the seed file does not exist.
var ErrNoSeedFile = errors.New("seed file not found")

// LoadRecords reads a TOML seed file of [[records]] tables. Records without
// an id receive a random UUID; duplicate ids are rejected.
func LoadRecords(path string) ([]*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSeedFile, path)
		}
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseRecords(data)
}

// ParseRecords decodes seed TOML. See LoadRecords.
func ParseRecords(data []byte) ([]*Record, error) {
	var raw struct {
		Records []Record `toml:"records"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make([]*Record, 0, len(raw.Records))
	seen := make(map[string]struct{}, len(raw.Records))
	for i := range raw.Records {
		rec := raw.Records[i]
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i+1, rec.ID)
		}
		if rec.EstValue < 0 {
			return nil, fmt.Errorf("record %q: est_value must not be negative", rec.ID)
		}
		seen[rec.ID] = struct{}{}
		out = append(out, &rec)
	}
	return out, nil
}
