package report

import (
	"bytes"
	"testing"

	"github.com/bnema/officehours/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var closedDay = domain.Report{
	Start:   "08:00",
	End:     "17:30",
	Total:   "09:30",
	Working: "08:30",
	Resting: "01:00",
}

func encode(t *testing.T, format Format, report domain.Report) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, format, report))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"":      FormatJSON,
		"JSON":  FormatJSON,
		"yml":   FormatYAML,
		"yaml":  FormatYAML,
		"toml":  FormatTOML,
		" text": FormatText,
	}
	for raw, want := range tests {
		got, err := ParseFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{
		"start": "08:00",
		"end": "17:30",
		"total": "09:30",
		"working": "08:30",
		"resting": "01:00"
	}`, encode(t, FormatJSON, closedDay))
}

func TestEncodeYAML(t *testing.T) {
	t.Parallel()

	assert.YAMLEq(t, `
start: "08:00"
end: "17:30"
total: "09:30"
working: "08:30"
resting: "01:00"
`, encode(t, FormatYAML, closedDay))
}

func TestEncodeTOML(t *testing.T) {
	t.Parallel()

	out := encode(t, FormatTOML, closedDay)
	assert.Contains(t, out, "start = '08:00'")
	assert.Contains(t, out, "working = '08:30'")
	assert.Contains(t, out, "resting = '01:00'")
}

func TestEncodeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Day started at 08:00\n"+
		"Day ended at 17:30\n"+
		"Total accounts: 09:30\n"+
		"    working: 08:30\n"+
		"    resting: 01:00\n", encode(t, FormatText, closedDay))
}

func TestEncodeEmptyReport(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{}\n", encode(t, FormatJSON, domain.Report{}))
	assert.Equal(t, "{}\n", encode(t, FormatYAML, domain.Report{}))
	assert.Empty(t, encode(t, FormatTOML, domain.Report{}))
	assert.Equal(t, "No events logged.\n", encode(t, FormatText, domain.Report{}))
}

func TestEncodeUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Encode(&bytes.Buffer{}, Format("xml"), closedDay)
	assert.ErrorContains(t, err, "unsupported output format")
}
