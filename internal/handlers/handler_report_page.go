package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/opsledger/deposit_recon_app/internal/core/ports/services"
	"github.com/opsledger/deposit_recon_app/internal/dto"
	"github.com/opsledger/deposit_recon_app/internal/middleware"
	"github.com/opsledger/deposit_recon_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

//go:embed templates/report.html
var templateFS embed.FS

// reportPageHandler serves the server-rendered HTML report. The page follows
// the same two-phase contract as the JSON endpoint: without the load flag it
// renders the shell only.
type reportPageHandler struct {
	reconciliationService portssvc.ReconciliationSvc
	defaultAsOf           time.Time
	tmpl                  *template.Template
}

// reportPageView is the template's view model.
type reportPageView struct {
	Report    dto.UnappliedDepositsReportResponse
	AsOfInput string
}

func newReportPageHandler(rs portssvc.ReconciliationSvc, cfg *config.Config) (*reportPageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, err
	}
	return &reportPageHandler{
		reconciliationService: rs,
		defaultAsOf:           cfg.DefaultAsOf,
		tmpl:                  tmpl,
	}, nil
}

// registerReportPageRoutes registers the HTML report routes. The page is
// served on the open group for browsers on the internal network; API access
// stays behind bearer tokens.
func registerReportPageRoutes(rg *gin.Engine, reconciliationService portssvc.ReconciliationSvc, cfg *config.Config) error {
	h, err := newReportPageHandler(reconciliationService, cfg)
	if err != nil {
		return err
	}
	rg.GET("/report", h.getReportPage)
	return nil
}

func (h *reportPageHandler) getReportPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.String(http.StatusBadRequest, "Invalid asOf date. Use YYYY-MM-DD.")
		return
	}

	asOf := h.defaultAsOf
	if query.AsOf != "" {
		if parsed, err := time.Parse(dateLayout, query.AsOf); err == nil {
			asOf = parsed
		}
	}

	var response dto.UnappliedDepositsReportResponse
	if query.Load {
		report, err := h.reconciliationService.UnappliedDepositsReport(c.Request.Context(), asOf)
		if err != nil {
			logger.Error("Failed to generate report for page", slog.String("error", err.Error()))
			c.String(http.StatusInternalServerError, "The report could not be generated. Please retry.")
			return
		}
		response = dto.ToUnappliedDepositsReportResponse(report)
	} else {
		response = dto.NewDeferredReportResponse(asOf)
	}

	view := reportPageView{
		Report:    response,
		AsOfInput: response.AsOf,
	}

	// Render into a buffer first so a template failure surfaces as an error
	// page instead of a half-written response. Computed data for this render
	// is discarded in that case.
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, view); err != nil {
		logger.Error("Failed to render report page", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "The report could not be rendered. Please retry or contact finance systems.")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
