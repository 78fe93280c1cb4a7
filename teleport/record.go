package teleport

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/quantumcomm/teleport/teleport/compress"
)

// A Record summarizes a single pipeline run for later inspection.
type Record struct {
	ID          string            `json:"id"`
	Text        string            `json:"text"`
	Received    string            `json:"received"`
	Match       bool              `json:"data_match"`
	Binary      string            `json:"binary_text"`
	Outcomes    []string          `json:"outcomes"`
	Compression compress.Strategy `json:"compression"`
	Shots       int               `json:"shots"`
	Noise       bool              `json:"noise_model"`
	TimeTaken   string            `json:"time_taken"`
	CreatedAt   time.Time         `json:"created_at"`
}

func newRecord() *Record {
	return &Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Save writes r to path as indented JSON.
func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving run record: %w", err)
	}
	return nil
}

// LoadRecord reads a run record previously written by Save.
func LoadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading run record: %w", err)
	}
	r := new(Record)
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parsing run record: %w", err)
	}
	return r, nil
}

// FormatDuration humanizes d as seconds, minutes, or hours.
func FormatDuration(d time.Duration) string {
	s := d.Seconds()
	if s >= 3600 {
		return fmt.Sprintf("%.2f hours", s/3600)
	}
	if s >= 60 {
		return fmt.Sprintf("%.2f minutes", s/60)
	}
	return fmt.Sprintf("%.2f seconds", s)
}
