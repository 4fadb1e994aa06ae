package csvdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_HeaderDetection(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHeaders []string
		wantRows    int
	}{
		{
			name:        "header is first row",
			input:       "name,email,plan\nAda,ada@example.com,pro\n",
			wantHeaders: []string{"name", "email", "plan"},
			wantRows:    1,
		},
		{
			name:        "rows before header discarded",
			input:       "Customer Export\ngenerated,2024-05-01\nname,email,plan\nAda,ada@example.com,pro\nGrace,grace@example.com,free\n",
			wantHeaders: []string{"name", "email", "plan"},
			wantRows:    2,
		},
		{
			name:        "short rows after header kept",
			input:       "name,email,plan\nAda\n",
			wantHeaders: []string{"name", "email", "plan"},
			wantRows:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeaders, ds.Headers)
			assert.Equal(t, tt.wantRows, ds.Count())
		})
	}
}

func TestRead_NoHeader(t *testing.T) {
	_, err := Read(strings.NewReader("just,two\none,row\n"))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestRead_StripsNulBytes(t *testing.T) {
	input := "na\x00me,em\x00ail,plan\nA\x00da,ada@example.com,pro\n"
	ds, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "email", "plan"}, ds.Headers)
	assert.Equal(t, [][]string{{"Ada", "ada@example.com", "pro"}}, ds.Rows)
}

func TestRead_LongNulRun(t *testing.T) {
	// Hundreds of KB of contiguous NULs produce many reads that strip
	// every byte; the stripper must keep reading instead of reporting
	// no progress.
	input := "name,email,plan\n" +
		strings.Repeat("\x00", 300*1024) +
		"Ada,ada@example.com,pro\n"

	ds, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Ada", "ada@example.com", "pro"}}, ds.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,email,plan\nAda,ada@example.com,pro\n"), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Count())
}

func TestDataset_Context(t *testing.T) {
	ds := &Dataset{Headers: []string{"name", "email", "plan"}}

	ctx := ds.Context([]string{"Ada", "ada@example.com", "pro"})
	assert.Equal(t, "Ada", ctx["name"])
	assert.Equal(t, "pro", ctx["plan"])

	data, ok := ctx["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", data["email"])
}

func TestDataset_Context_ShortRow(t *testing.T) {
	ds := &Dataset{Headers: []string{"name", "email", "plan"}}

	ctx := ds.Context([]string{"Ada"})
	assert.Equal(t, "Ada", ctx["name"])
	_, ok := ctx["email"]
	assert.False(t, ok)
}

func TestDataset_Context_DuplicateHeaderLastWins(t *testing.T) {
	ds := &Dataset{Headers: []string{"name", "name", "plan"}}

	ctx := ds.Context([]string{"Ada", "Grace", "pro"})
	assert.Equal(t, "Grace", ctx["name"])
}

func TestDataset_EmailColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    string
	}{
		{"plain email header", []string{"name", "email", "plan"}, "email"},
		{"mixed case", []string{"name", "Email Address", "plan"}, "Email Address"},
		{"e-mail spelling", []string{"name", "E-Mail", "plan"}, "E-Mail"},
		{"no match falls back to first", []string{"name", "plan"}, "name"},
		{"no headers", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &Dataset{Headers: tt.headers}
			assert.Equal(t, tt.want, ds.EmailColumn())
		})
	}
}
