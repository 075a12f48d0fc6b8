// Package store persists evaluation runs as per-run directories with a
// metadata.json, so past scenarios can be listed and exported.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is everything recorded about one run.
type RunMetadata struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Preset    string        `json:"preset,omitempty"`
	Config    config.Config `json:"config"`
	Result    sim.Result    `json:"result"`
}

// Save records one run and returns its ID.
func (s *Store) Save(cfg *config.Config, preset string, result sim.Result) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Preset:    preset,
		Config:    *cfg,
		Result:    result,
	}

	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return runID, nil
}

// Load reads one run by ID.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	return &meta, nil
}

// List returns all stored runs, newest first. Directories without a
// readable metadata.json are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// ExportJSON writes one run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// ExportCSV writes one run's result figures as a header plus one row.
func ExportCSV(w io.Writer, meta *RunMetadata) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "timestamp",
		"raw_heat_flux", "final_heat_flux", "flux_expansion",
		"ecrh_efficiency", "heat_reduction", "safety_margin", "viable",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	r := meta.Result
	row := []string{
		meta.ID,
		meta.Timestamp.Format(time.RFC3339),
		strconv.FormatFloat(r.RawHeatFlux, 'f', 6, 64),
		strconv.FormatFloat(r.FinalHeatFlux, 'f', 6, 64),
		strconv.FormatFloat(r.FluxExpansion, 'f', 6, 64),
		strconv.FormatFloat(r.ECRHEfficiency, 'f', 6, 64),
		strconv.FormatFloat(r.HeatReduction, 'f', 6, 64),
		strconv.FormatFloat(r.SafetyMargin, 'f', 6, 64),
		strconv.FormatBool(r.Viable),
	}
	return cw.Write(row)
}
