package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"txengine/internal/domain"
)

// WriteReport writes the replay summary and final accounts as indented JSON.
func WriteReport(w io.Writer, report *domain.ReplayReport) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	output = append(output, '\n')
	_, err = w.Write(output)
	return err
}

// WriteReportFile writes the report to path, replacing any existing file.
func WriteReportFile(path string, report *domain.ReplayReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := WriteReport(file, report); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
