package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Periodo 5/2025",
		Headers: []string{"Disciplina", "Parámetros"},
		Rows: [][]string{
			{"Cycling", `{"tarifaBase":350}`},
			{"Yoga", `{"tarifaBase":280}`},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Disciplina,Parámetros", lines[0])
	assert.Contains(t, lines[1], "Cycling")
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Table{})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sampleTable())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderPDFRequiresHeaders(t *testing.T) {
	_, err := RenderPDF(Table{})
	assert.Error(t, err)
}
