package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// record fila del CSV indexada por el nombre de columna de la cabecera.
type record map[string]string

// get columna vacía si no existe.
func (r record) get(col string) string { return strings.TrimSpace(r[col]) }

// decoder envuelve la entrada según la codificación declarada.
func decoder(encoding string, in io.Reader) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return in, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(in, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(in, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", encoding)
}

// readRecords lee la cabecera y devuelve las filas; exige las columnas required.
// Acepta coma o punto y coma como separador (lo detecta en la cabecera).
func readRecords(in io.Reader, required ...string) ([]record, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	r := csv.NewReader(strings.NewReader(text))
	header := strings.SplitN(text, "\n", 2)[0]
	if strings.Count(header, ";") > strings.Count(header, ",") {
		r.Comma = ';'
	}
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv vacío")
	}

	cols := make([]string, len(rows[0]))
	present := map[string]bool{}
	for i, c := range rows[0] {
		cols[i] = strings.ToLower(strings.TrimSpace(c))
		present[cols[i]] = true
	}
	for _, c := range required {
		if !present[c] {
			return nil, fmt.Errorf("falta la columna %q en la cabecera", c)
		}
	}

	out := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := record{}
		empty := true
		for i, v := range row {
			if i < len(cols) {
				rec[cols[i]] = v
				if strings.TrimSpace(v) != "" {
					empty = false
				}
			}
		}
		if !empty {
			out = append(out, rec)
		}
	}
	return out, nil
}
