package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"txengine/internal/domain"
	"txengine/internal/usecase"
)

var (
	// ErrMalformedRecord marks a row that cannot be turned into a transaction.
	ErrMalformedRecord = errors.New("malformed transaction record")
	// ErrMissingColumn marks a header without one of the required columns.
	ErrMissingColumn = errors.New("missing required column")
)

const (
	columnType   = "type"
	columnClient = "client"
	columnTx     = "tx"
	columnAmount = "amount"
)

// CSVTransactionReader implements the TransactionSource interface for CSV files.
type CSVTransactionReader struct{}

var _ usecase.TransactionSource = (*CSVTransactionReader)(nil)

// NewCSVTransactionReader creates a new reader instance.
func NewCSVTransactionReader() *CSVTransactionReader {
	return &CSVTransactionReader{}
}

// Open opens the CSV file at path and reads its header.
func (r *CSVTransactionReader) Open(ctx context.Context, path string) (usecase.TransactionStream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}

	stream, err := NewCSVTransactionStream(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	stream.closer = file
	return stream, nil
}

// CSVTransactionStream parses transaction rows one at a time. Columns are
// located by header name and every field is trimmed of surrounding spaces.
type CSVTransactionStream struct {
	reader  *csv.Reader
	closer  io.Closer
	columns map[string]int
}

// NewCSVTransactionStream reads the header row from r.
func NewCSVTransactionStream(r io.Reader) (*CSVTransactionStream, error) {
	reader := csv.NewReader(r)
	// dispute rows commonly leave out the trailing amount column
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{columnType, columnClient, columnTx} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return &CSVTransactionStream{reader: reader, columns: columns}, nil
}

// Next returns the next transaction, or io.EOF at the end of input.
func (s *CSVTransactionStream) Next() (domain.Transaction, error) {
	record, err := s.reader.Read()
	if err == io.EOF {
		return domain.Transaction{}, io.EOF
	}
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("error reading record: %w", err)
	}

	tx, err := s.parseRecord(record)
	if err != nil {
		line, _ := s.reader.FieldPos(0)
		return domain.Transaction{}, fmt.Errorf("line %d: %w", line, err)
	}
	return tx, nil
}

// Close releases the underlying file, if any.
func (s *CSVTransactionStream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *CSVTransactionStream) field(record []string, name string) string {
	i, ok := s.columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (s *CSVTransactionStream) parseRecord(record []string) (domain.Transaction, error) {
	kind, err := domain.ParseTransactionKind(s.field(record, columnType))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	rawClient := s.field(record, columnClient)
	client, err := strconv.ParseUint(rawClient, 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: could not parse client %q: %v", ErrMalformedRecord, rawClient, err)
	}

	rawTx := s.field(record, columnTx)
	txID, err := strconv.ParseUint(rawTx, 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: could not parse tx %q: %v", ErrMalformedRecord, rawTx, err)
	}

	tx := domain.Transaction{
		Kind:   kind,
		Client: domain.ClientID(client),
		ID:     domain.TransactionID(txID),
	}

	rawAmount := s.field(record, columnAmount)
	switch {
	case kind.CarriesAmount() && rawAmount == "":
		return domain.Transaction{}, fmt.Errorf("%w: %s must specify amount", ErrMalformedRecord, kind)
	case kind.CarriesAmount():
		amount, err := domain.ParseAmount(rawAmount)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: could not parse amount %q: %w", ErrMalformedRecord, rawAmount, err)
		}
		tx.Amount = amount
	case rawAmount != "":
		return domain.Transaction{}, fmt.Errorf("%w: %s cannot specify amount", ErrMalformedRecord, kind)
	}

	return tx, nil
}
