package semicrf

// Row is a single token's ordered attribute columns; the last column is
// always the surface token.
type Row []string

// Surface returns the last (surface-token) column of the row.
func (r Row) Surface() string {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

// Data is one sequence: its token rows plus, during training, the
// ground-truth segmentation and per-label duration statistics.
type Data struct {
	Title    string
	Rows     []Row
	Segments Segments // nil for inference-only sequences until predicted

	mean     map[Label]float64
	variance map[Label]float64
}

// NewData constructs a Data sequence from rows.
func NewData(title string, rows []Row) *Data {
	return &Data{Title: title, Rows: rows}
}

// Len returns the number of token rows (S in the spec's notation).
func (d *Data) Len() int { return len(d.Rows) }

// SetDurationStats installs the per-label duration mean/variance used by
// duration-aware feature functions (e.g. Digit's y2l term).
func (d *Data) SetDurationStats(mean, variance map[Label]float64) {
	d.mean = mean
	d.variance = variance
}

// Mean returns the duration mean for y, or 0 if unset.
func (d *Data) Mean(y Label) float64 { return d.mean[y] }

// Variance returns the duration variance for y, or 0 if unset.
func (d *Data) Variance(y Label) float64 { return d.variance[y] }
