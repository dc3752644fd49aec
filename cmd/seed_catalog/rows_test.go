package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords_CabeceraYFilas(t *testing.T) {
	in := "Name,Description\nAcme, Herramientas\n,\nBosch,Eléctricas\n"

	rows, err := readRecords(strings.NewReader(in), "name")
	require.NoError(t, err)

	require.Len(t, rows, 2, "las filas vacías se ignoran")
	assert.Equal(t, "Acme", rows[0].get("name"))
	assert.Equal(t, "Herramientas", rows[0].get("description"))
	assert.Equal(t, "Eléctricas", rows[1].get("description"))
	assert.Empty(t, rows[1].get("no_existe"))
}

func TestReadRecords_PuntoYComaYBOM(t *testing.T) {
	in := "\ufeffname;tax_id;email\nFerretería Sur;900123456;ventas@sur.test\n"

	rows, err := readRecords(strings.NewReader(in), "name", "tax_id")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Ferretería Sur", rows[0].get("name"))
	assert.Equal(t, "900123456", rows[0].get("tax_id"))
}

func TestReadRecords_FaltaColumnaObligatoria(t *testing.T) {
	_, err := readRecords(strings.NewReader("name,description\nAcme,x\n"), "name", "tax_id")
	assert.ErrorContains(t, err, "tax_id")

	_, err = readRecords(strings.NewReader(""), "name")
	assert.Error(t, err)
}

func TestDecoder_Latin1(t *testing.T) {
	// "Eléctricas" en ISO-8859-1: é = 0xE9
	raw := "name\nEl\xe9ctricas\n"

	in, err := decoder("ISO-8859-1", strings.NewReader(raw))
	require.NoError(t, err)
	rows, err := readRecords(in, "name")
	require.NoError(t, err)

	assert.Equal(t, "Eléctricas", rows[0].get("name"))

	_, err = decoder("ebcdic", strings.NewReader(raw))
	assert.Error(t, err)
}

func TestSupplierFromRecord(t *testing.T) {
	got := supplierFromRecord(record{"name": " Sur ", "tax_id": "900", "email": "a@b.test"})

	assert.Equal(t, "Sur", got.Name)
	assert.Equal(t, "900", got.TaxID)
	assert.Equal(t, "a@b.test", got.Email)
}
