package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"txengine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) ([]domain.Transaction, error) {
	t.Helper()
	stream, err := NewCSVTransactionStream(strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var txs []domain.Transaction
	for {
		tx, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return txs, nil
		}
		if err != nil {
			return txs, err
		}
		txs = append(txs, tx)
	}
}

func TestCSVTransactionStream_Next(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []domain.Transaction
		wantErr  error
	}{
		{
			name: "valid transactions",
			input: "type, client, tx, amount\n" +
				"deposit, 1, 1, 1.0\n" +
				"deposit, 2, 2, 2.0\n" +
				"withdrawal, 1, 4, 1.5\n" +
				"dispute, 1, 1,\n" +
				"resolve, 1, 1\n" +
				"chargeback, 2, 2, \n",
			expected: []domain.Transaction{
				domain.Deposit(1, 1, domain.MustParseAmount("1.0")),
				domain.Deposit(2, 2, domain.MustParseAmount("2.0")),
				domain.Withdrawal(1, 4, domain.MustParseAmount("1.5")),
				domain.Dispute(1, 1),
				domain.Resolve(1, 1),
				domain.Chargeback(2, 2),
			},
		},
		{
			name: "columns in any order",
			input: "client,amount,tx,type\n" +
				"65535,0.12345,4294967295,withdrawal\n",
			expected: []domain.Transaction{
				domain.Withdrawal(65535, 4294967295, domain.MustParseAmount("0.1234")),
			},
		},
		{
			name:     "header only",
			input:    "type,client,tx,amount\n",
			expected: nil,
		},
		{
			name:    "missing column",
			input:   "type,client,amount\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "deposit without amount",
			input:   "type,client,tx,amount\ndeposit,1,1,\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "withdrawal without amount column value",
			input:   "type,client,tx,amount\nwithdrawal,1,1\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "dispute with amount",
			input:   "type,client,tx,amount\ndispute,1,1,1.0\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "unknown type",
			input:   "type,client,tx,amount\ntransfer,1,1,1.0\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "client out of range",
			input:   "type,client,tx,amount\ndeposit,65536,1,1.0\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "negative tx",
			input:   "type,client,tx,amount\ndeposit,1,-1,1.0\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "non-digit in fractional portion",
			input:   "type,client,tx,amount\ndeposit,1,1,1.00001x\n",
			wantErr: domain.ErrNonDigitInFractionalPortion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readAll(t, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCSVTransactionStream_ErrorCarriesLine(t *testing.T) {
	_, err := readAll(t, "type,client,tx,amount\ndeposit,1,1,1\ndeposit,1,2,abc\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.ErrorIs(t, err, domain.ErrInvalidIntegerPortion)
	assert.Contains(t, err.Error(), "line 3")
}

func TestCSVTransactionStream_NegativeAmountIsNotAParseError(t *testing.T) {
	got, err := readAll(t, "type,client,tx,amount\ndeposit,1,1,-2.5\n")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "-2.5000", got[0].Amount.String())
}

func TestCSVTransactionReader_Open(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "transactions.csv")

	file, err := os.Create(path)
	require.NoError(t, err)
	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll([][]string{
		{"type", "client", "tx", "amount"},
		{"deposit", "1", "1", "1.5"},
		{"withdrawal", "1", "2", "0.25"},
	}))
	require.NoError(t, file.Close())

	repo := NewCSVTransactionReader()
	stream, err := repo.Open(context.Background(), path)
	require.NoError(t, err)

	tx, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.Deposit(1, 1, domain.MustParseAmount("1.5")), tx)

	tx, err = stream.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.Withdrawal(1, 2, domain.MustParseAmount("0.25")), tx)

	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, stream.Close())
}

func TestCSVTransactionReader_OpenErrors(t *testing.T) {
	repo := NewCSVTransactionReader()

	_, err := repo.Open(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = repo.Open(context.Background(), empty)
	assert.ErrorIs(t, err, io.EOF)
}
