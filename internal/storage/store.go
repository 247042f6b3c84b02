package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/androclassic/quantum-particle-simulation/internal/engine"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
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

type RunMetadata struct {
	ID            string    `json:"id"`
	Scenario      string    `json:"scenario"`
	Timestamp     time.Time `json:"timestamp"`
	Integrator    string    `json:"integrator"`
	Dt            float64   `json:"dt"`
	ImaginaryTime bool      `json:"imaginary_time"`
	Steps         int       `json:"steps"`
	GridDim       int       `json:"grid_dim"`
	Cells         int       `json:"cells"`
	CellVolume    float64   `json:"cell_volume"`
	Extent        []float64 `json:"extent"`
	Snapshots     int       `json:"snapshots"`
}

// Save writes a run directory holding metadata.json and snapshots.csv.
// Each CSV row is one snapshot: time followed by interleaved re/im
// pairs per cell.
func (s *Store) Save(meta RunMetadata, trace *engine.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Snapshots = len(trace.States)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "snapshots.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(trace.States) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range trace.States[0] {
		header = append(header, fmt.Sprintf("re%d", i), fmt.Sprintf("im%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, state := range trace.States {
		row := make([]string, 0, 1+2*len(state))
		row = append(row, strconv.FormatFloat(trace.Times[i], 'g', -1, 64))
		for _, v := range state {
			row = append(row,
				strconv.FormatFloat(real(v), 'g', -1, 64),
				strconv.FormatFloat(imag(v), 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads a stored snapshot sequence back into memory.
func (s *Store) LoadTrace(runID string) (*engine.Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "snapshots.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &engine.Trace{}, nil
	}

	trace := &engine.Trace{
		States: make([]quantum.Wavefunction, 0, len(records)-1),
		Times:  make([]float64, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) < 3 || (len(record)-1)%2 != 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		state := make(quantum.Wavefunction, 0, (len(record)-1)/2)
		for j := 1; j+1 < len(record); j += 2 {
			re, err1 := strconv.ParseFloat(record[j], 64)
			im, err2 := strconv.ParseFloat(record[j+1], 64)
			if err1 != nil || err2 != nil {
				break
			}
			state = append(state, complex(re, im))
		}
		trace.Times = append(trace.Times, t)
		trace.States = append(trace.States, state)
	}

	return trace, nil
}
