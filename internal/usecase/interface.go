package usecase

import (
	"context"

	"macenroll/internal/domain"
)

// TableRepository loads the three input tables. The usecase layer depends on
// this interface, not on the CSV implementation.
//
//go:generate mockgen -destination=mocks/mock_interfaces.go -source=interface.go TableRepository,ReportWriter
type TableRepository interface {
	LoadRoster(ctx context.Context, path string) ([]domain.RosterEntry, error)
	LoadAssetExport(ctx context.Context, path string) ([]domain.AssetExportRow, error)
	LoadInventory(ctx context.Context, path string) ([]domain.InventoryRow, error)
}

// ReportWriter serializes discrepancy rows to a delimited file.
type ReportWriter interface {
	WriteReport(path string, headers []string, rows []map[string]string) error
}
