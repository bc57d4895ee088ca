package services

import (
	"context"
	"time"

	"github.com/opsledger/deposit_recon_app/internal/core/domain"
)

// ReconciliationSvc produces the unapplied deposits reconciliation snapshot.
type ReconciliationSvc interface {
	// UnappliedDepositsReport runs the deposit, credit memo, and journal
	// engines plus the independent GL balance query for the given cutoff
	// date and combines them into a report. Individual query failures are
	// logged and surfaced as empty sections; the only error returned is
	// cancellation of the enclosing request context.
	UnappliedDepositsReport(ctx context.Context, asOf time.Time) (*domain.ReconciliationReport, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Reconciliation ReconciliationSvc
}
