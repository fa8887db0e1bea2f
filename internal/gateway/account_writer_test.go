package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"txengine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleAccounts = []domain.ClientAccount{
	{
		Client: 1,
		Account: domain.Account{
			Available: domain.MustParseAmount("1.5"),
		},
	},
	{
		Client: 2,
		Account: domain.Account{
			Available: domain.MustParseAmount("-0.25"),
			Held:      domain.MustParseAmount("1.5"),
			Frozen:    true,
		},
	},
}

func TestCSVAccountWriter_WriteAccounts(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, CSVAccountWriter{}.WriteAccounts(context.Background(), &out, sampleAccounts))

	expected := "client,available,held,total,locked\n" +
		"1,1.5000,0.0000,1.5000,false\n" +
		"2,-0.2500,1.5000,1.2500,true\n"
	assert.Equal(t, expected, out.String())
}

func TestCSVAccountWriter_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, CSVAccountWriter{}.WriteAccounts(context.Background(), &out, nil))
	assert.Equal(t, "client,available,held,total,locked\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestCSVAccountWriter_WriteError(t *testing.T) {
	err := CSVAccountWriter{}.WriteAccounts(context.Background(), failingWriter{}, sampleAccounts)
	assert.Error(t, err)
}

func TestJSONAccountWriter_WriteAccounts(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, JSONAccountWriter{}.WriteAccounts(context.Background(), &out, sampleAccounts))

	expected := `[
		{"client": 1, "available": "1.5000", "held": "0.0000", "total": "1.5000", "locked": false},
		{"client": 2, "available": "-0.2500", "held": "1.5000", "total": "1.2500", "locked": true}
	]`
	assert.JSONEq(t, expected, out.String())

	var records []domain.AccountRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	assert.Equal(t, sampleAccounts[1].Record(), records[1])
}

func TestTableAccountWriter_WriteAccounts(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, TableAccountWriter{}.WriteAccounts(context.Background(), &out, sampleAccounts))

	got := out.String()
	for _, want := range []string{"client", "available", "locked", "-0.2500", "1.2500", "true"} {
		assert.Contains(t, got, want)
	}
}

func TestNewAccountWriter(t *testing.T) {
	tests := []struct {
		format   string
		expected any
		wantErr  bool
	}{
		{format: FormatCSV, expected: CSVAccountWriter{}},
		{format: FormatJSON, expected: JSONAccountWriter{}},
		{format: FormatTable, expected: TableAccountWriter{}},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := NewAccountWriter(tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, got)
		})
	}
}
