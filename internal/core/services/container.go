package services

import (
	portsrepo "github.com/opsledger/deposit_recon_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/deposit_recon_app/internal/core/ports/services"
)

// NewContainer creates a new service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, reconCfg ReconciliationConfig) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Reconciliation: NewReconciliationService(repos.LedgerRepo, reconCfg),
	}
}
