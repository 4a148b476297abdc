package semicrf

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Weights is a dense weight vector plus the metadata needed to rebuild the
// feature function and interpret the vector: dimensions, feature name,
// maximum segment length, and per-label duration statistics.
type Weights struct {
	Values    []float64
	XDim      int
	YDim      int
	Feature   string
	MaxLength int
	Mean      map[Label]float64
	Variance  map[Label]float64
}

// NewWeights allocates a zero weight vector of the given dimension.
func NewWeights(dim int) *Weights {
	return &Weights{Values: make([]float64, dim)}
}

// Len returns len(Values).
func (w *Weights) Len() int { return len(w.Values) }

// weightsJSON mirrors the self-describing on-disk model format (spec §4.7,
// §6.1). Keys are exact; unknown keys are ignored by json.Unmarshal.
type weightsJSON struct {
	Title     string        `json:"title"`
	Dimension [2]int        `json:"dimension"`
	Feature   string        `json:"feature"`
	MaxLength int           `json:"max_length"`
	Mean      [][2]float64  `json:"mean"`
	Variance  [][2]float64  `json:"variance"`
	Weights   []float64     `json:"weights"`
}

// LoadWeights reads and validates a weights JSON file.
func LoadWeights(path string) (*Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewInputError("opening weights file", err)
	}
	defer f.Close()

	var doc weightsJSON
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, NewInputError("parsing weights JSON", err)
	}
	if len(doc.Weights) == 0 {
		return nil, NewInputError("empty weights vector", nil)
	}

	w := &Weights{
		Values:    doc.Weights,
		XDim:      doc.Dimension[0],
		YDim:      doc.Dimension[1],
		Feature:   doc.Feature,
		MaxLength: doc.MaxLength,
		Mean:      make(map[Label]float64, len(doc.Mean)),
		Variance:  make(map[Label]float64, len(doc.Variance)),
	}
	for _, m := range doc.Mean {
		w.Mean[Label(int(m[0]))] = m[1]
	}
	for _, v := range doc.Variance {
		w.Variance[Label(int(v[0]))] = v[1]
	}
	return w, nil
}

// sortedLabels returns m's keys in ascending order, so Save's output is
// byte-for-byte stable across runs regardless of map iteration order
// (spec §8 invariant 9: save(load(file)) round-trips exactly).
func sortedLabels(m map[Label]float64) []Label {
	labels := make([]Label, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Save writes the weights as pretty-printed, newline-terminated JSON.
func (w *Weights) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewInputError("creating weights file", err)
	}
	defer f.Close()

	doc := weightsJSON{
		Title:     "Semi-CRF Weights",
		Dimension: [2]int{w.XDim, w.YDim},
		Feature:   w.Feature,
		MaxLength: w.MaxLength,
		Weights:   w.Values,
	}
	for _, l := range sortedLabels(w.Mean) {
		doc.Mean = append(doc.Mean, [2]float64{float64(l), w.Mean[l]})
	}
	for _, l := range sortedLabels(w.Variance) {
		doc.Variance = append(doc.Variance, [2]float64{float64(l), w.Variance[l]})
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("writing weights JSON: %w", err)
	}
	return nil
}
