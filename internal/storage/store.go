package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/arraylist/internal/scenario"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

var traceHeader = []string{"step", "op", "arg", "value", "output", "error", "size", "capacity", "passed", "message"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID              string             `json:"id"`
	Scenario        string             `json:"scenario"`
	Timestamp       time.Time          `json:"timestamp"`
	Capacity        int                `json:"capacity"`
	Steps           int                `json:"steps"`
	Passed          int                `json:"passed"`
	Failed          int                `json:"failed"`
	Final           []string           `json:"final"`
	CapacityHistory []int              `json:"capacity_history"`
	Metrics         map[string]float64 `json:"metrics"`
}

func (s *Store) Save(result *scenario.Result) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Scenario:        result.Scenario,
		Timestamp:       time.Now(),
		Capacity:        result.Capacity,
		Steps:           len(result.Steps),
		Passed:          result.Passed,
		Failed:          result.Failed,
		Final:           result.Final,
		CapacityHistory: result.CapacityHistory,
		Metrics:         result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return "", err
	}
	for _, step := range result.Steps {
		row := []string{
			strconv.Itoa(step.Index),
			step.Op,
			strconv.Itoa(step.Arg),
			step.Value,
			step.Output,
			step.Error,
			strconv.Itoa(step.Size),
			strconv.Itoa(step.Capacity),
			strconv.FormatBool(step.Passed),
			step.Message,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns the stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := checkID(runID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]scenario.Step, error) {
	if err := checkID(runID); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(traceHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []scenario.Step{}, nil
	}

	steps := make([]scenario.Step, 0, len(records)-1)
	for i, rec := range records[1:] {
		step, err := parseStep(rec)
		if err != nil {
			return nil, fmt.Errorf("trace row %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}

	return steps, nil
}

func parseStep(rec []string) (scenario.Step, error) {
	var (
		step scenario.Step
		err  error
	)
	if step.Index, err = strconv.Atoi(rec[0]); err != nil {
		return step, err
	}
	step.Op = rec[1]
	if step.Arg, err = strconv.Atoi(rec[2]); err != nil {
		return step, err
	}
	step.Value = rec[3]
	step.Output = rec[4]
	step.Error = rec[5]
	if step.Size, err = strconv.Atoi(rec[6]); err != nil {
		return step, err
	}
	if step.Capacity, err = strconv.Atoi(rec[7]); err != nil {
		return step, err
	}
	if step.Passed, err = strconv.ParseBool(rec[8]); err != nil {
		return step, err
	}
	step.Message = rec[9]
	return step, nil
}

func checkID(runID string) error {
	if _, err := uuid.Parse(runID); err != nil {
		return fmt.Errorf("invalid run id %q: %w", runID, err)
	}
	return nil
}
