// Package cli provides the quadsolve command-line application.
package cli

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	quadmatrix "github.com/m-vokhm/QuadMatrix-sub001"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

// checkFinite rejects a value the core assumes away at construction: A and
// every right-hand side must be finite. The core itself performs no such
// validation (input validation is the outward collaborator's job), so
// this CLI does it before values ever reach a Solver.
func checkFinite(v float64, path string, row, col int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: row %d col %d: %w", path, row, col, &quadmatrix.Error{Kind: quadmatrix.NotFinite, Op: "parse"})
	}
	return nil
}

// readMatrixCSV loads a square matrix of float64 values from a CSV file.
// Every row must hold the same number of fields as there are rows.
func readMatrixCSV(path string) (*quadmatrix.Matrix[scalar.Float64], error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	n := len(records)
	rows := make([][]scalar.Float64, n)
	for i, rec := range records {
		if len(rec) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d (matrix must be square)", path, i, len(rec), n)
		}
		row := make([]scalar.Float64, n)
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %w", path, i, j, err)
			}
			if err := checkFinite(v, path, i, j); err != nil {
				return nil, err
			}
			row[j] = scalar.Float64(v)
		}
		rows[i] = row
	}
	return quadmatrix.NewMatrix(rows), nil
}

// readVectorCSV loads a vector of float64 values from a CSV file, one value
// per line (optionally comma-separated, in which case only the first
// column is used).
func readVectorCSV(path string) (*quadmatrix.Vector[scalar.Float64], error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	vals := make([]scalar.Float64, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			return nil, fmt.Errorf("%s: row %d is empty", path, i)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i, err)
		}
		if err := checkFinite(v, path, i, 0); err != nil {
			return nil, err
		}
		vals[i] = scalar.Float64(v)
	}
	return quadmatrix.NewVector(vals), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	// Drop blank trailing lines a text editor commonly appends.
	for len(records) > 0 && len(records[len(records)-1]) == 1 && strings.TrimSpace(records[len(records)-1][0]) == "" {
		records = records[:len(records)-1]
	}
	return records, nil
}

func writeVector(v *quadmatrix.Vector[scalar.Float64]) {
	for i := 0; i < v.Len(); i++ {
		fmt.Printf("%.10g\n", float64(v.At(i)))
	}
}

func writeMatrix(m *quadmatrix.Matrix[scalar.Float64]) {
	n := m.N()
	for i := 0; i < n; i++ {
		parts := make([]string, n)
		for j := 0; j < n; j++ {
			parts[j] = strconv.FormatFloat(float64(m.At(i, j)), 'g', 10, 64)
		}
		fmt.Println(strings.Join(parts, ","))
	}
}
