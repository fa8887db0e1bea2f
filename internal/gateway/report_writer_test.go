package gateway

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"txengine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleReport = &domain.ReplayReport{
	Summary: domain.ReplaySummary{
		TotalTransactions: 3,
		Applied:           2,
		Rejected:          1,
		ByKind: map[domain.TransactionKind]domain.KindStats{
			domain.TransactionKindDeposit:    {Applied: 2},
			domain.TransactionKindWithdrawal: {Rejected: 1},
		},
	},
	Accounts: sampleAccounts,
}

const sampleReportJSON = `{
	"summary": {
		"total_transactions": 3,
		"applied": 2,
		"rejected": 1,
		"by_kind": {
			"deposit": {"applied": 2, "rejected": 0},
			"withdrawal": {"applied": 0, "rejected": 1}
		}
	},
	"accounts": [
		{"client": 1, "account": {"available": "1.5000", "held": "0.0000", "locked": false}},
		{"client": 2, "account": {"available": "-0.2500", "held": "1.5000", "locked": true}}
	]
}`

func TestWriteReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, sampleReport))
	assert.JSONEq(t, sampleReportJSON, out.String())

	assert.Error(t, WriteReport(failingWriter{}, sampleReport))
}

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReportFile(path, sampleReport))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, sampleReportJSON, string(content))

	err = WriteReportFile(filepath.Join(t.TempDir(), "missing", "report.json"), sampleReport)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
