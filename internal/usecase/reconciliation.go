package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"macenroll/internal/conf"
	"macenroll/internal/domain"
)

// Report filenames. Both are written to the output directory only when the
// corresponding set is non-empty.
const (
	MissingReportName   = "missing.csv"
	DuplicateReportName = "doublons.csv"
)

// ImportUseCase orchestrates one reconciliation run: load, match, classify,
// correlate, assemble.
type ImportUseCase struct {
	repo     TableRepository
	reports  ReportWriter
	defaults conf.Defaults
	logger   logrus.FieldLogger
}

// NewImportUseCase creates a new instance of the usecase.
func NewImportUseCase(repo TableRepository, reports ReportWriter, defaults conf.Defaults, logger logrus.FieldLogger) *ImportUseCase {
	return &ImportUseCase{repo: repo, reports: reports, defaults: defaults, logger: logger}
}

// ImportResult is one reconciliation run's output.
type ImportResult struct {
	Records    []domain.EnrollmentRecord `json:"records"`
	Missing    []domain.MissingRow       `json:"missing"`
	Duplicates []domain.DuplicateRow     `json:"duplicates"`

	RosterCount    int `json:"rosterCount"`
	AssetCount     int `json:"assetCount"`
	InventoryCount int `json:"inventoryCount"`
}

// Import runs the reconciliation over the three input files. A file that
// cannot be read or decoded aborts the whole run; malformed rows inside a
// readable file have already been dropped by the repository.
func (uc *ImportUseCase) Import(ctx context.Context, rosterPath, assetPath, inventoryPath string) (*ImportResult, error) {
	roster, err := uc.repo.LoadRoster(ctx, rosterPath)
	if err != nil {
		return nil, fmt.Errorf("could not load roster: %w", err)
	}

	assets, err := uc.repo.LoadAssetExport(ctx, assetPath)
	if err != nil {
		return nil, fmt.Errorf("could not load asset export: %w", err)
	}

	inventory, err := uc.repo.LoadInventory(ctx, inventoryPath)
	if err != nil {
		return nil, fmt.Errorf("could not load inventory: %w", err)
	}

	buckets := matchNames(roster, assets)
	unique, missing, duplicates := classify(roster, buckets)
	records := correlate(unique, inventory, uc.defaults)

	uc.logger.WithFields(logrus.Fields{
		"roster":     len(roster),
		"assets":     len(assets),
		"inventory":  len(inventory),
		"records":    len(records),
		"missing":    len(missing),
		"duplicates": len(duplicates),
	}).Info("import complete")

	return &ImportResult{
		Records:        records,
		Missing:        missing,
		Duplicates:     duplicates,
		RosterCount:    len(roster),
		AssetCount:     len(assets),
		InventoryCount: len(inventory),
	}, nil
}

// WriteReports writes missing.csv and doublons.csv under outDir. Empty sets
// produce no file. The two writes are independent: a failure is logged and
// does not block the other write or the caller.
func (uc *ImportUseCase) WriteReports(result *ImportResult, outDir string) {
	if len(result.Missing) > 0 {
		path := filepath.Join(outDir, MissingReportName)
		if err := uc.reports.WriteReport(path, domain.MissingHeaders, domain.MissingColumns(result.Missing)); err != nil {
			uc.logger.WithError(err).Errorf("failed to write %s", MissingReportName)
		}
	}
	if len(result.Duplicates) > 0 {
		path := filepath.Join(outDir, DuplicateReportName)
		if err := uc.reports.WriteReport(path, domain.DuplicateHeaders, domain.DuplicateColumns(result.Duplicates)); err != nil {
			uc.logger.WithError(err).Errorf("failed to write %s", DuplicateReportName)
		}
	}
}
