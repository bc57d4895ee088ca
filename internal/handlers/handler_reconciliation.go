package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/opsledger/deposit_recon_app/internal/core/ports/services"
	"github.com/opsledger/deposit_recon_app/internal/dto"
	"github.com/opsledger/deposit_recon_app/internal/middleware"
	"github.com/opsledger/deposit_recon_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ReportQuery carries the report request parameters. The load flag gates the
// expensive queries: without it only the report shell is returned, so an
// initial page paint never waits on the ledger.
type ReportQuery struct {
	AsOf string `form:"asOf" binding:"omitempty,reportdate"`
	Load bool   `form:"load"`
}

// reconciliationHandler handles HTTP requests for the reconciliation report
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
	defaultAsOf           time.Time
}

// newReconciliationHandler creates a new reconciliationHandler
func newReconciliationHandler(rs portssvc.ReconciliationSvc, cfg *config.Config) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: rs,
		defaultAsOf:           cfg.DefaultAsOf,
	}
}

// registerReconciliationRoutes registers routes for the reconciliation report
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc, cfg *config.Config) {
	h := newReconciliationHandler(reconciliationService, cfg)

	reports := rg.Group("/reports")
	{
		reports.GET("/unapplied-deposits", h.getUnappliedDeposits)
		reports.GET("/unapplied-deposits/export", h.exportUnappliedDeposits)
	}
}

// resolveAsOf parses the cutoff parameter, falling back to the configured
// default report date.
func (h *reconciliationHandler) resolveAsOf(asOfStr string) time.Time {
	if asOfStr == "" {
		return h.defaultAsOf
	}
	asOf, err := time.Parse(dateLayout, asOfStr)
	if err != nil {
		// Binding already validated the format; treat a parse failure as
		// no parameter.
		return h.defaultAsOf
	}
	return asOf
}

// getUnappliedDeposits godoc
// @Summary Generate the unapplied deposits reconciliation report
// @Description Computes unapplied deposits, overpayment credit memos, journal adjustments, and the three-way variance as of a cutoff date. Queries run only when load=true; otherwise the report shell is returned.
// @Tags reports
// @Produce json
// @Param asOf query string false "Cutoff date (YYYY-MM-DD)" default(configured default date)
// @Param load query boolean false "Issue the expensive queries" default(false)
// @Success 200 {object} dto.UnappliedDepositsReportResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/unapplied-deposits [get]
func (h *reconciliationHandler) getUnappliedDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf date format. Use YYYY-MM-DD"})
		return
	}

	asOf := h.resolveAsOf(query.AsOf)

	if !query.Load {
		c.JSON(http.StatusOK, dto.NewDeferredReportResponse(asOf))
		return
	}

	logger = logger.With(slog.String("asOf", asOf.Format(dateLayout)))
	logger.Info("Received request to generate unapplied deposits report")

	report, err := h.reconciliationService.UnappliedDepositsReport(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate unapplied deposits report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnappliedDepositsReportResponse(report))
}
