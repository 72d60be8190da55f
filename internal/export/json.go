package export

import (
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/san-kum/arraylist/internal/scenario"
	"github.com/san-kum/arraylist/internal/storage"
)

type ExportData struct {
	ID              string             `json:"id"`
	Scenario        string             `json:"scenario"`
	Capacity        int                `json:"capacity"`
	Passed          int                `json:"passed"`
	Failed          int                `json:"failed"`
	Final           []string           `json:"final"`
	CapacityHistory []int              `json:"capacity_history"`
	Metrics         map[string]float64 `json:"metrics"`
	Steps           []scenario.Step    `json:"steps"`
}

func NewExportData(meta *storage.RunMetadata, steps []scenario.Step) ExportData {
	if steps == nil {
		steps = []scenario.Step{}
	}
	return ExportData{
		ID:              meta.ID,
		Scenario:        meta.Scenario,
		Capacity:        meta.Capacity,
		Passed:          meta.Passed,
		Failed:          meta.Failed,
		Final:           meta.Final,
		CapacityHistory: meta.CapacityHistory,
		Metrics:         meta.Metrics,
		Steps:           steps,
	}
}

func WriteJSON(w io.Writer, meta *storage.RunMetadata, steps []scenario.Step) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, steps))
}

func ExportJSON(path string, meta *storage.RunMetadata, steps []scenario.Step) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, meta, steps); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func ReadJSON(r io.Reader) (*ExportData, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
