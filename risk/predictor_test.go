package risk

import (
	"os"
	"path/filepath"
	"testing"
)

func writeModelFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write model file: %v", err)
	}
	return path
}

func TestLoadModel(t *testing.T) {
	path := writeModelFile(t, `{
		"labels": ["On Track", "At Risk", "Delayed"],
		"centroids": [[92, 1, 5, 320], [55, 4, 3, 180], [20, 9, 1, 60]],
		"scale": [100, 10, 10, 600]
	}`)

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}
	if len(m.Labels) != 3 || len(m.Centroids) != 3 {
		t.Fatalf("model = %+v, want 3 labels and 3 centroids", m)
	}
}

func TestLoadModelRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"not json", `centroids!`},
		{"label count mismatch", `{"labels": ["A"], "centroids": [[1,2,3,4], [5,6,7,8]]}`},
		{"short centroid", `{"labels": ["A"], "centroids": [[1,2,3]]}`},
		{"short scale", `{"labels": ["A"], "centroids": [[1,2,3,4]], "scale": [1,2]}`},
		{"no labels", `{"labels": [], "centroids": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeModelFile(t, tt.contents)
			if _, err := LoadModel(path); err == nil {
				t.Fatal("LoadModel() accepted an invalid file")
			}
		})
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("LoadModel() accepted a missing file")
	}
}

func TestPredict(t *testing.T) {
	m := &Model{
		Labels: []string{"On Track", "At Risk", "Delayed"},
		Centroids: [][]float64{
			{92, 1, 5, 320},
			{55, 4, 3, 180},
			{20, 9, 1, 60},
		},
		Scale: []float64{100, 10, 10, 600},
	}

	tests := []struct {
		name                                       string
		completion, delay, tasksCompleted, minutes float64
		want                                       string
	}{
		{"healthy", 95, 0, 5, 300, "On Track"},
		{"struggling", 50, 5, 2, 150, "At Risk"},
		{"stalled", 15, 10, 0, 30, "Delayed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Predict(tt.completion, tt.delay, tt.tasksCompleted, tt.minutes)
			if got != tt.want {
				t.Fatalf("Predict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredictWithoutScale(t *testing.T) {
	m := &Model{
		Labels:    []string{"Low", "High"},
		Centroids: [][]float64{{10, 0, 0, 0}, {90, 0, 0, 0}},
	}
	if got := m.Predict(85, 0, 0, 0); got != "High" {
		t.Fatalf("Predict() = %q, want High", got)
	}
}
