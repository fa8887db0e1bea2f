package gateway

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"txengine/internal/domain"
	"txengine/internal/usecase"

	"github.com/olekukonko/tablewriter"
)

// ErrUnknownFormat is returned for an output format with no writer.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats understood by NewAccountWriter.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatTable = "table"
)

var accountHeader = []string{"client", "available", "held", "total", "locked"}

// NewAccountWriter returns the writer for format.
func NewAccountWriter(format string) (usecase.AccountWriter, error) {
	switch format {
	case FormatCSV:
		return CSVAccountWriter{}, nil
	case FormatJSON:
		return JSONAccountWriter{}, nil
	case FormatTable:
		return TableAccountWriter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func accountRow(ca domain.ClientAccount) []string {
	rec := ca.Record()
	return []string{
		strconv.FormatUint(uint64(rec.Client), 10),
		rec.Available.String(),
		rec.Held.String(),
		rec.Total.String(),
		strconv.FormatBool(rec.Locked),
	}
}

// CSVAccountWriter writes one CSV row per account under a
// client,available,held,total,locked header.
type CSVAccountWriter struct{}

func (CSVAccountWriter) WriteAccounts(ctx context.Context, w io.Writer, accounts []domain.ClientAccount) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(accountHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, ca := range accounts {
		if err := writer.Write(accountRow(ca)); err != nil {
			return fmt.Errorf("failed to write account %d: %w", ca.Client, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// JSONAccountWriter writes the accounts as an indented JSON array.
type JSONAccountWriter struct{}

func (JSONAccountWriter) WriteAccounts(ctx context.Context, w io.Writer, accounts []domain.ClientAccount) error {
	records := make([]domain.AccountRecord, 0, len(accounts))
	for _, ca := range accounts {
		records = append(records, ca.Record())
	}

	output, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON output: %w", err)
	}
	output = append(output, '\n')
	_, err = w.Write(output)
	return err
}

// TableAccountWriter renders an aligned text table for terminals.
type TableAccountWriter struct{}

func (TableAccountWriter) WriteAccounts(ctx context.Context, w io.Writer, accounts []domain.ClientAccount) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(accountHeader)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, ca := range accounts {
		table.Append(accountRow(ca))
	}
	table.Render()
	return nil
}
