package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ExportData is the serializable form of a recorded run; paths carry
// native components per sample.
type ExportData struct {
	Name    string        `json:"name"`
	Dt      float64       `json:"dt"`
	Tracks  int           `json:"tracks"`
	Samples int           `json:"samples"`
	Times   []float64     `json:"times"`
	Paths   [][][]float64 `json:"paths"`
}

// Export flattens the tracker into its serializable form.
func (t *Tracker[P]) Export(name string, dt float64) ExportData {
	paths := make([][][]float64, t.Tracks())
	for k := range t.paths {
		paths[k] = make([][]float64, len(t.paths[k]))
		for s, pos := range t.paths[k] {
			paths[k][s] = pos.Components()
		}
	}
	return ExportData{
		Name:    name,
		Dt:      dt,
		Tracks:  t.Tracks(),
		Samples: t.Samples(),
		Times:   t.times,
		Paths:   paths,
	}
}

// WriteJSON writes the run as indented JSON.
func (d ExportData) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteCSV writes one row per sample: the time column followed by the
// native components of every track (t, p0_c0, p0_c1, ..., p1_c0, ...).
func (d ExportData) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	dim := 0
	if d.Tracks > 0 && d.Samples > 0 {
		dim = len(d.Paths[0][0])
	}

	header := []string{"t"}
	for k := 0; k < d.Tracks; k++ {
		for i := 0; i < dim; i++ {
			header = append(header, fmt.Sprintf("p%d_c%d", k, i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for s, time := range d.Times {
		row = row[:0]
		row = append(row, strconv.FormatFloat(time, 'g', -1, 64))
		for k := 0; k < d.Tracks; k++ {
			for i := 0; i < dim; i++ {
				row = append(row, strconv.FormatFloat(d.Paths[k][s][i], 'g', -1, 64))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
