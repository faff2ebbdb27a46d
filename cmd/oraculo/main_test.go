package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vanshika/oraculo/internal/service"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNumerologyCommand(t *testing.T) {
	out, err := runCLI(t, "numerology", "--name", "Ana", "--date", "1990-05-15")
	require.NoError(t, err)

	assert.Contains(t, out, "Letras: a n a")
	assert.Contains(t, out, "  3\n 6 6\n1 5 1\n")
	assert.Contains(t, out, "Número do destino: 3")
}

func TestNumerologyCommandValidation(t *testing.T) {
	_, err := runCLI(t, "numerology", "--name", "A", "--date", "1990-05-15")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "fullName", verr.Field)

	_, err = runCLI(t, "numerology", "--name", "Ana")
	assert.Error(t, err)
}

func TestAstrologyCommand(t *testing.T) {
	out, err := runCLI(t, "astrology", "--date", "2000-01-01", "--time", "10:30", "--city", "Lisboa", "--country", "Portugal")
	require.NoError(t, err)

	assert.Contains(t, out, "Sol: Capricórnio")
	assert.Contains(t, out, "Lua: Áries")
	assert.Contains(t, out, "Ascendente: Sagitário")
	assert.Equal(t, 6, strings.Count(out, "\n  "))
}

func TestDatagenAndBatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "people.yaml")
	output := filepath.Join(dir, "readings.json")

	_, err := runCLI(t, "datagen", "--count", "12", "--seed", "5", "--output", input)
	require.NoError(t, err)

	_, err = runCLI(t, "batch", "--input", input, "--output", output, "--workers", "3")
	require.NoError(t, err)

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	var records []batchRecord
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 12)
	for i, rec := range records {
		assert.Equal(t, i, rec.Index)
		assert.Empty(t, rec.Error)
		assert.True(t, rec.DestinyNumber > 0 || rec.Sun != "", "record %d is empty", i)
	}
}

func TestBatchReportsFailures(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "people.json")
	require.NoError(t, os.WriteFile(input, []byte(`[
		{"fullName": "Ana", "birthDate": "1990-05-15"},
		{"fullName": "Ana", "birthDate": "1990-02-30"}
	]`), 0o644))

	out, err := runCLI(t, "batch", "--input", input, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 items failed")

	var records []batchRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, 3, records[0].DestinyNumber)
	assert.NotEmpty(t, records[1].Error)
}
