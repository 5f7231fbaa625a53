// internal/bench/report.go

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Report is the summary written after a run.
type Report struct {
	ID          string  `json:"id" yaml:"id"`
	Oracle      string  `json:"oracle" yaml:"oracle"`
	Strategy    string  `json:"strategy" yaml:"strategy"`
	Fingerprint string  `json:"fingerprint" yaml:"fingerprint"`
	StartedAt   string  `json:"startedAt" yaml:"started_at"`
	Metrics     Metrics `json:"metrics" yaml:"metrics"`
}

// NewReport summarizes b.
func NewReport(b Batch) Report {
	return Report{
		ID:          b.ID,
		Oracle:      b.Oracle,
		Strategy:    b.Strategy,
		Fingerprint: b.Fingerprint,
		StartedAt:   b.StartedAt.Format(time.RFC3339),
		Metrics:     Compute(b),
	}
}

// Write encodes v as "json" or "yaml".
func Write(w io.Writer, format string, v any) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
