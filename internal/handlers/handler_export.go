package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/opsledger/deposit_recon_app/internal/dto"
	"github.com/opsledger/deposit_recon_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportUnappliedDeposits godoc
// @Summary Export the unapplied deposits reconciliation report as XLSX
// @Description Runs the reconciliation for the given cutoff date and streams an Excel workbook with Deposits, Credit Memos, Journal, and Summary sheets.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param asOf query string false "Cutoff date (YYYY-MM-DD)" default(configured default date)
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build export"
// @Security BearerAuth
// @Router /reports/unapplied-deposits/export [get]
func (h *reconciliationHandler) exportUnappliedDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid export query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf date format. Use YYYY-MM-DD"})
		return
	}

	asOf := h.resolveAsOf(query.AsOf)

	// Exports are an audit-relevant action; record who asked for one.
	if operator, ok := middleware.GetUserIDFromContext(c); ok {
		logger.Info("Report export requested",
			slog.String("operator", operator),
			slog.String("asOf", asOf.Format(dateLayout)))
	}

	report, err := h.reconciliationService.UnappliedDepositsReport(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate report for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build export"})
		return
	}

	response := dto.ToUnappliedDepositsReportResponse(report)

	f, err := buildReportWorkbook(response)
	if err != nil {
		logger.Error("Failed to build report workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build export"})
		return
	}

	filename := fmt.Sprintf("unapplied_deposits_%s.xlsx", response.AsOf)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to write export to response", slog.String("error", err.Error()))
	}
}

// buildReportWorkbook lays the report out across four sheets. Amounts are
// written as numbers so spreadsheet formulas work on them.
func buildReportWorkbook(report dto.UnappliedDepositsReportResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	const depositSheet = "Deposits"
	if err := f.SetSheetName("Sheet1", depositSheet); err != nil {
		return nil, err
	}

	depositHeaders := []string{"Deposit #", "Date", "Status", "Amount", "Applied", "Unapplied", "Sales Order", "SO Status", "Department", "Sales Rep"}
	for i, header := range depositHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(depositSheet, cell, header)
	}
	for i, row := range report.Deposits.Rows {
		values := []interface{}{
			row.DepositNumber,
			row.Date,
			row.StatusLabel,
			row.Amount.InexactFloat64(),
			row.AmountApplied.InexactFloat64(),
			row.AmountUnapplied.InexactFloat64(),
			strPtrValue(row.SalesOrderID),
			strPtrValue(row.SalesOrderStatus),
			strPtrValue(row.Department),
			strPtrValue(row.SalesRep),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(depositSheet, cell, v)
		}
	}
	if report.Deposits.IsTruncated {
		note := fmt.Sprintf("Detail rows capped at %d of %d; unapplied total %s sourced from aggregate query.",
			len(report.Deposits.Rows), report.Deposits.ActualCount, report.Deposits.TotalUnapplied.String())
		cell, _ := excelize.CoordinatesToCellName(1, len(report.Deposits.Rows)+3)
		f.SetCellValue(depositSheet, cell, note)
	}

	const memoSheet = "Credit Memos"
	if _, err := f.NewSheet(memoSheet); err != nil {
		return nil, err
	}
	memoHeaders := []string{"Memo #", "Date", "Status", "Amount", "Applied", "Unapplied", "Customer", "Origin Deposit", "Overpayment Date", "Receivables", "Deposit Balance", "Unbilled Orders"}
	for i, header := range memoHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(memoSheet, cell, header)
	}
	for i, row := range report.CreditMemos.Rows {
		values := []interface{}{
			row.MemoNumber,
			row.Date,
			row.StatusLabel,
			row.Amount.InexactFloat64(),
			row.AmountApplied.InexactFloat64(),
			row.AmountUnapplied.InexactFloat64(),
			row.CustomerName,
			strPtrValue(row.OriginDepositNumber),
			strPtrValue(row.OverpaymentDate),
			row.ReceivablesBalance.InexactFloat64(),
			row.DepositBalance.InexactFloat64(),
			row.UnbilledOrdersBalance.InexactFloat64(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(memoSheet, cell, v)
		}
	}

	const journalSheet = "Journal"
	if _, err := f.NewSheet(journalSheet); err != nil {
		return nil, err
	}
	journalHeaders := []string{"Journal #", "Date", "Memo", "Debit", "Credit", "Net", "Running Total"}
	for i, header := range journalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(journalSheet, cell, header)
	}
	for i, line := range report.Journal.Lines {
		values := []interface{}{
			line.JournalNumber,
			line.Date,
			line.Memo,
			line.Debit.InexactFloat64(),
			line.Credit.InexactFloat64(),
			line.NetAmount.InexactFloat64(),
			line.RunningTotal.InexactFloat64(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(journalSheet, cell, v)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"As Of", report.AsOf},
		{"Total Unapplied Deposits", report.Summary.TotalUnappliedDeposits.InexactFloat64()},
		{"Total Unapplied Credit Memos", report.Summary.TotalUnappliedCreditMemos.InexactFloat64()},
		{"Journal Impact", report.Summary.JournalImpact.InexactFloat64()},
		{"Adjusted Total", report.Summary.AdjustedTotal.InexactFloat64()},
		{"GL Balance", report.Summary.GLBalance.InexactFloat64()},
		{"Variance", report.Summary.Variance.InexactFloat64()},
		{"Variance Flagged", report.Summary.VarianceFlag},
	}
	for i, pair := range summaryRows {
		for j, v := range pair {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(summarySheet, cell, v)
		}
	}

	return f, nil
}

func strPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
