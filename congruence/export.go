// Package congruence: the canonical interchange surface. Congruences export
// as ordered lists of integer blocks, the covering relation as an edge list
// of lattice indices — identical shape in JSON and CSV.
package congruence

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
)

// Export formats accepted by Export.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ExportData is the canonical interchange representation of a built lattice.
type ExportData struct {
	// Size is the number of congruences.
	Size int `json:"size"`

	// Congruences holds every congruence in canonical lattice order, each as
	// an ordered list of integer blocks (ascending by minimal element).
	Congruences [][][]int `json:"congruences"`

	// CoveringRelation is the edge list of covering pairs (lower, upper),
	// referring to lattice indices.
	CoveringRelation [][2]int `json:"covering_relation"`

	// Atoms and Coatoms are lattice indices, ascending.
	Atoms   []int `json:"atoms"`
	Coatoms []int `json:"coatoms"`
}

// ExportData returns the interchange value for l.
func (l *Lattice) ExportData() ExportData {
	blocks := make([][][]int, len(l.cons))
	for i, p := range l.cons {
		blocks[i] = p.Blocks()
	}

	return ExportData{
		Size:             len(l.cons),
		Congruences:      blocks,
		CoveringRelation: l.CoveringRelation(),
		Atoms:            l.Atoms(),
		Coatoms:          l.Coatoms(),
	}
}

// Export renders the lattice in the requested format, FormatJSON or
// FormatCSV. Returns ErrUnknownFormat otherwise.
func (l *Lattice) Export(format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return l.ExportJSON()
	case FormatCSV:
		return l.ExportCSV()
	default:
		return nil, ErrUnknownFormat
	}
}

// ExportJSON renders the canonical interchange shape as JSON.
func (l *Lattice) ExportJSON() ([]byte, error) {
	return json.Marshal(l.ExportData())
}

// ExportCSV renders the lattice as CSV records:
//
//	size,<n>
//	congruence,<index>,<blocks in "0 2|1 3" notation>
//	cover,<lower>,<upper>
//	atom,<index>
//	coatom,<index>
//
// Record order mirrors the canonical lattice order, so the output is
// byte-for-byte reproducible.
func (l *Lattice) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	data := l.ExportData()
	if err := w.Write([]string{"size", strconv.Itoa(data.Size)}); err != nil {
		return nil, err
	}
	for i, con := range data.Congruences {
		parts := make([]string, len(con))
		for bi, blk := range con {
			elems := make([]string, len(blk))
			for ei, e := range blk {
				elems[ei] = strconv.Itoa(e)
			}
			parts[bi] = strings.Join(elems, " ")
		}
		rec := []string{"congruence", strconv.Itoa(i), strings.Join(parts, "|")}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	for _, c := range data.CoveringRelation {
		if err := w.Write([]string{"cover", strconv.Itoa(c[0]), strconv.Itoa(c[1])}); err != nil {
			return nil, err
		}
	}
	for _, a := range data.Atoms {
		if err := w.Write([]string{"atom", strconv.Itoa(a)}); err != nil {
			return nil, err
		}
	}
	for _, c := range data.Coatoms {
		if err := w.Write([]string{"coatom", strconv.Itoa(c)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
