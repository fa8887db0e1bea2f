package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"txengine/internal/domain"
	"txengine/internal/engine"

	"go.uber.org/zap"
)

// ReplayUseCase feeds a transaction stream through the engine and hands the
// resulting accounts to a writer.
type ReplayUseCase struct {
	source TransactionSource
	writer AccountWriter
	logger *zap.Logger
	opts   []engine.Option
}

// NewReplayUseCase creates a new instance of the usecase. A nil logger
// discards diagnostics.
func NewReplayUseCase(source TransactionSource, writer AccountWriter, logger *zap.Logger, opts ...engine.Option) *ReplayUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReplayUseCase{source: source, writer: writer, logger: logger, opts: opts}
}

// Replay applies every record of the input in order. Records the engine
// rejects are logged and skipped; read errors abort the replay.
func (uc *ReplayUseCase) Replay(ctx context.Context, path string) (*domain.ReplayReport, error) {
	stream, err := uc.source.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not open transactions: %w", err)
	}
	defer stream.Close()

	processor := engine.NewProcessor(uc.opts...)
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tx, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read transaction %d: %w", total+1, err)
		}
		total++

		if err := processor.Apply(tx); err != nil {
			uc.logger.Warn("transaction rejected",
				zap.String("type", string(tx.Kind)),
				zap.Uint16("client", uint16(tx.Client)),
				zap.Uint32("tx", uint32(tx.ID)),
				zap.Error(rejectionReason(err)),
			)
		}
	}

	report := &domain.ReplayReport{
		Summary:  summarize(total, processor.Stats()),
		Accounts: processor.Finish(),
	}
	uc.logger.Info("replay finished",
		zap.Int("transactions", report.Summary.TotalTransactions),
		zap.Int("applied", report.Summary.Applied),
		zap.Int("rejected", report.Summary.Rejected),
		zap.Int("accounts", len(report.Accounts)),
	)
	return report, nil
}

// Run replays the input and writes the final accounts to out.
func (uc *ReplayUseCase) Run(ctx context.Context, path string, out io.Writer) (*domain.ReplayReport, error) {
	report, err := uc.Replay(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := uc.writer.WriteAccounts(ctx, out, report.Accounts); err != nil {
		return nil, fmt.Errorf("could not write accounts: %w", err)
	}
	return report, nil
}

// rejectionReason strips the transaction context the log fields already
// carry, leaving the sentinel cause.
func rejectionReason(err error) error {
	var txErr *engine.TransactionError
	if errors.As(err, &txErr) && txErr.Err != nil {
		return txErr.Err
	}
	return err
}

func summarize(total int, stats map[domain.TransactionKind]domain.KindStats) domain.ReplaySummary {
	summary := domain.ReplaySummary{
		TotalTransactions: total,
		ByKind:            make(map[domain.TransactionKind]domain.KindStats),
	}
	for _, kind := range domain.TransactionKinds {
		s := stats[kind]
		summary.ByKind[kind] = s
		summary.Applied += s.Applied
	}
	// records of an unknown kind are rejected without reaching the stats
	summary.Rejected = total - summary.Applied
	return summary
}
