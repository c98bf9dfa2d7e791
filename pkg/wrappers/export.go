package wrappers

import (
	"context"
	"fmt"
	"os"

	"github.com/user/pciscope/pkg/engine"
	"github.com/user/pciscope/pkg/report"
)

const DefaultReportPath = "pci_scope_report.xlsx"

// ExportReportWrapper implements the Tool interface for writing the
// auditor-ready workbook to disk
type ExportReportWrapper struct {
	Result *engine.Result
}

func (e *ExportReportWrapper) Name() string {
	return "ExportReport"
}

func (e *ExportReportWrapper) Description() string {
	return "Exports the current assessment as a multi-sheet Excel workbook (Inventory, Scope, Controls, Remediation)."
}

func (e *ExportReportWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional output path for the workbook (default: pci_scope_report.xlsx)",
			},
		},
	}
}

func (e *ExportReportWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if e.Result == nil {
		return "Error: no assessment loaded. Run the pipeline first.", nil
	}

	filename := DefaultReportPath
	if val, ok := args["filename"].(string); ok && val != "" {
		filename = val
	}

	if progress != nil {
		progress(fmt.Sprintf("Writing report to %s...", filename))
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Sprintf("Error creating report file: %v", err), nil
	}
	defer f.Close()

	if err := report.WriteWorkbook(f, report.Sheets(*e.Result)); err != nil {
		return fmt.Sprintf("Error writing report: %v", err), nil
	}
	return fmt.Sprintf("Report written to '%s' with sheets Inventory, Scope, Controls, Remediation.", filename), nil
}
