package semicrf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Corpus is a decoded training or inference data file (spec §6.2).
type Corpus struct {
	Feature    string
	XDim       int
	YDim       int
	LabelNames map[Label]string
	NameLabels map[string]Label
	Pages      []*Page
}

// Page is one document: a title plus its sequences.
type Page struct {
	Title     string
	Sequences []*Data
}

type labelDescriptorJSON struct {
	Name string `json:"name"`
	ID   *int   `json:"id,omitempty"`
}

type segmentSpecJSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

type pageJSON struct {
	Title        string              `json:"title"`
	Data         [][][]string        `json:"data"`
	Segmentation [][]segmentSpecJSON `json:"segmentation,omitempty"`
}

type corpusJSON struct {
	Feature   string                `json:"feature"`
	Dimension [2]int                `json:"dimension"`
	Labels    []labelDescriptorJSON `json:"labels"`
	Pages     []pageJSON            `json:"pages"`
}

// LoadCorpus decodes a training or inference data file. When
// requireSegmentation is true, every sequence must carry a ground-truth
// segmentation that passes Segments.ValidateCover, checked eagerly so
// malformed ground truth is rejected before training starts.
func LoadCorpus(path string, maxLength int, requireSegmentation bool) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewInputError("opening corpus file", err)
	}
	defer f.Close()

	var doc corpusJSON
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, NewInputError("parsing corpus JSON", err)
	}

	nameLabels := map[string]Label{}
	labelNames := map[Label]string{ZERO: "ZERO"}
	next := 1
	for _, ld := range doc.Labels {
		var id int
		if ld.ID != nil {
			id = *ld.ID
			if id <= 0 {
				return nil, NewInputError(fmt.Sprintf("label %q declares reserved id %d", ld.Name, id), nil)
			}
		} else {
			id = next
		}
		if next <= id {
			next = id + 1
		}
		nameLabels[ld.Name] = Label(id)
		labelNames[Label(id)] = ld.Name
	}

	xDim, yDim := doc.Dimension[0], doc.Dimension[1]
	if yDim != 0 && yDim != len(labelNames) {
		return nil, NewDimensionError(fmt.Sprintf("declared yDim %d does not match %d declared labels (including ZERO)", yDim, len(labelNames)))
	}
	if yDim == 0 {
		yDim = len(labelNames)
	}

	corpus := &Corpus{
		Feature:    doc.Feature,
		XDim:       xDim,
		YDim:       yDim,
		LabelNames: labelNames,
		NameLabels: nameLabels,
	}

	for _, pj := range doc.Pages {
		page := &Page{Title: pj.Title}
		for si, rowsJSON := range pj.Data {
			rows := make([]Row, len(rowsJSON))
			for ri, cols := range rowsJSON {
				rows[ri] = Row(cols)
			}
			data := NewData(pj.Title, rows)

			if requireSegmentation {
				if si >= len(pj.Segmentation) {
					return nil, NewInputError(fmt.Sprintf("page %q sequence %d missing segmentation", pj.Title, si), nil)
				}
				segs, err := decodeSegments(pj.Segmentation[si], nameLabels)
				if err != nil {
					return nil, err
				}
				if err := segs.ValidateCover(data.Len(), maxLength); err != nil {
					return nil, err
				}
				data.Segments = segs
			}

			page.Sequences = append(page.Sequences, data)
		}
		corpus.Pages = append(corpus.Pages, page)
	}

	return corpus, nil
}

func decodeSegments(specs []segmentSpecJSON, nameLabels map[string]Label) (Segments, error) {
	segs := make(Segments, 0, len(specs))
	for _, s := range specs {
		label, ok := nameLabels[s.Label]
		if !ok {
			return nil, NewInputError(fmt.Sprintf("unknown label %q in segmentation", s.Label), nil)
		}
		seg, err := NewSegment(s.Start, s.End, label)
		if err != nil {
			return nil, NewInputError("invalid segment in segmentation", err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// AllSequences flattens every page's sequences into one slice, in page
// order, for driver consumption.
func (c *Corpus) AllSequences() []*Data {
	var all []*Data
	for _, p := range c.Pages {
		all = append(all, p.Sequences...)
	}
	return all
}

// Labels returns the corpus's label set {ZERO, 1, ..., yDim-1}.
func (c *Corpus) Labels() Labels {
	return NewLabels(c.YDim)
}

// WritePredictions serializes corpus back to the data-file JSON shape,
// with each sequence's Segments rendered as its segmentation (spec §6.2),
// for the predictor entry point's output stream (spec §6.3).
func (c *Corpus) WritePredictions(w io.Writer) error {
	doc := corpusJSON{
		Feature:   c.Feature,
		Dimension: [2]int{c.XDim, c.YDim},
	}
	for label, name := range c.LabelNames {
		if label == ZERO {
			continue
		}
		id := int(label)
		doc.Labels = append(doc.Labels, labelDescriptorJSON{Name: name, ID: &id})
	}

	for _, page := range c.Pages {
		pj := pageJSON{Title: page.Title}
		for _, seq := range page.Sequences {
			rowsJSON := make([][]string, len(seq.Rows))
			for i, row := range seq.Rows {
				rowsJSON[i] = []string(row)
			}
			pj.Data = append(pj.Data, rowsJSON)

			var segSpecs []segmentSpecJSON
			for _, seg := range seq.Segments {
				segSpecs = append(segSpecs, segmentSpecJSON{
					Start: seg.Start,
					End:   seg.End,
					Label: c.LabelNames[seg.Label],
				})
			}
			pj.Segmentation = append(pj.Segmentation, segSpecs)
		}
		doc.Pages = append(doc.Pages, pj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}
