package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macenroll/internal/conf"
	"macenroll/internal/domain"
	"macenroll/internal/usecase"
	mock_usecase "macenroll/internal/usecase/mocks"
)

var testDefaults = conf.Defaults{
	LocationGroupID: "570",
	PlatformID:      10,
	MessageType:     1,
	Ownership:       "C",
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestImportUseCase_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rosterPath := "/exports/roster.csv"
	assetPath := "/exports/assets.csv"
	inventoryPath := "/exports/inventory.csv"

	tests := []struct {
		name           string
		roster         []domain.RosterEntry
		assets         []domain.AssetExportRow
		inventory      []domain.InventoryRow
		rosterError    error
		assetError     error
		inventoryError error
		wantRecords    []domain.EnrollmentRecord
		wantMissing    []domain.MissingRow
		wantDuplicates []domain.DuplicateRow
		wantErr        bool
	}{
		{
			name:   "single unique match end to end",
			roster: []domain.RosterEntry{{Name: "jdoe"}},
			assets: []domain.AssetExportRow{
				{ComputerName: "WS-JDOE-01", SerialNumber: "SN000123456", UserName: "John Doe"},
			},
			inventory: []domain.InventoryRow{
				{SerialNumber: "SN000123456", InventoryNumber: "INV42"},
			},
			wantRecords: []domain.EnrollmentRecord{
				{
					FriendlyName:    "WS-JDOE-01",
					EndUserName:     "John Doe",
					SerialNumber:    "SN000123456",
					AssetNumber:     "INV42",
					LocationGroupID: "570",
					PlatformID:      10,
					MessageType:     1,
					Ownership:       "C",
				},
			},
		},
		{
			name:   "duplicate matches are reported and excluded from correlation",
			roster: []domain.RosterEntry{{Name: "doe"}},
			assets: []domain.AssetExportRow{
				{ComputerName: "WS-DOE-01", SerialNumber: "SN000123456", UserName: "John Doe"},
				{ComputerName: "WS-DOE-02", SerialNumber: "SN000654321", UserName: "Jane Doe"},
			},
			inventory: []domain.InventoryRow{
				{SerialNumber: "SN000123456", InventoryNumber: "INV42"},
				{SerialNumber: "SN000654321", InventoryNumber: "INV43"},
			},
			wantDuplicates: []domain.DuplicateRow{
				{ComputerName: "WS-DOE-01", Name: "doe"},
				{ComputerName: "WS-DOE-02", Name: "doe"},
			},
		},
		{
			name:   "unmatched name lands in the missing set twice",
			roster: []domain.RosterEntry{{Name: "ghost"}},
			assets: []domain.AssetExportRow{
				{ComputerName: "WS-JDOE-01", SerialNumber: "SN1", UserName: "John Doe"},
			},
			inventory: []domain.InventoryRow{},
			wantMissing: []domain.MissingRow{
				{Name: "ghost"},
				{Name: "ghost"},
			},
		},
		{
			name:   "unique match with no inventory correlation yields no record",
			roster: []domain.RosterEntry{{Name: "jdoe"}},
			assets: []domain.AssetExportRow{
				{ComputerName: "WS-JDOE-01", SerialNumber: "SN000123456", UserName: "John Doe"},
			},
			inventory: []domain.InventoryRow{
				{SerialNumber: "XYZ123457", InventoryNumber: "INV43"},
			},
		},
		{
			name:      "empty inputs",
			roster:    []domain.RosterEntry{},
			assets:    []domain.AssetExportRow{},
			inventory: []domain.InventoryRow{},
		},
		{
			name:        "roster load error aborts the import",
			rosterError: errors.New("disk gone"),
			wantErr:     true,
		},
		{
			name:       "asset export load error aborts the import",
			roster:     []domain.RosterEntry{},
			assetError: errors.New("disk gone"),
			wantErr:    true,
		},
		{
			name:           "inventory load error aborts the import",
			roster:         []domain.RosterEntry{},
			assets:         []domain.AssetExportRow{},
			inventoryError: errors.New("disk gone"),
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock_usecase.NewMockTableRepository(ctrl)
			reports := mock_usecase.NewMockReportWriter(ctrl)

			if tt.rosterError != nil {
				repo.EXPECT().LoadRoster(gomock.Any(), rosterPath).Return(nil, tt.rosterError)
			} else {
				repo.EXPECT().LoadRoster(gomock.Any(), rosterPath).Return(tt.roster, nil)
				if tt.assetError != nil {
					repo.EXPECT().LoadAssetExport(gomock.Any(), assetPath).Return(nil, tt.assetError)
				} else {
					repo.EXPECT().LoadAssetExport(gomock.Any(), assetPath).Return(tt.assets, nil)
					if tt.inventoryError != nil {
						repo.EXPECT().LoadInventory(gomock.Any(), inventoryPath).Return(nil, tt.inventoryError)
					} else {
						repo.EXPECT().LoadInventory(gomock.Any(), inventoryPath).Return(tt.inventory, nil)
					}
				}
			}

			uc := usecase.NewImportUseCase(repo, reports, testDefaults, testLogger())
			got, err := uc.Import(context.Background(), rosterPath, assetPath, inventoryPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			// IDs are freshly generated; compare records without them.
			records := make([]domain.EnrollmentRecord, len(got.Records))
			for i, rec := range got.Records {
				assert.NotEmpty(t, rec.ID)
				rec.ID = ""
				records[i] = rec
			}
			if tt.wantRecords == nil {
				assert.Empty(t, records)
			} else {
				assert.Equal(t, tt.wantRecords, records)
			}

			if tt.wantMissing == nil {
				assert.Empty(t, got.Missing)
			} else {
				assert.Equal(t, tt.wantMissing, got.Missing)
			}
			if tt.wantDuplicates == nil {
				assert.Empty(t, got.Duplicates)
			} else {
				assert.Equal(t, tt.wantDuplicates, got.Duplicates)
			}
		})
	}
}

func TestImportUseCase_WriteReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty sets write no files", func(t *testing.T) {
		reports := mock_usecase.NewMockReportWriter(ctrl)
		// No WriteReport expectations: any call would fail the test.

		uc := usecase.NewImportUseCase(nil, reports, testDefaults, testLogger())
		uc.WriteReports(&usecase.ImportResult{}, "/out")
	})

	t.Run("both reports written when non-empty", func(t *testing.T) {
		reports := mock_usecase.NewMockReportWriter(ctrl)
		reports.EXPECT().
			WriteReport("/out/missing.csv", domain.MissingHeaders,
				[]map[string]string{{"name": "ghost"}}).
			Return(nil)
		reports.EXPECT().
			WriteReport("/out/doublons.csv", domain.DuplicateHeaders,
				[]map[string]string{{"computername": "WS-DOE-01", "name": "doe"}}).
			Return(nil)

		uc := usecase.NewImportUseCase(nil, reports, testDefaults, testLogger())
		uc.WriteReports(&usecase.ImportResult{
			Missing:    []domain.MissingRow{{Name: "ghost"}},
			Duplicates: []domain.DuplicateRow{{ComputerName: "WS-DOE-01", Name: "doe"}},
		}, "/out")
	})

	t.Run("missing report failure does not block doublons", func(t *testing.T) {
		reports := mock_usecase.NewMockReportWriter(ctrl)
		reports.EXPECT().
			WriteReport("/out/missing.csv", gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))
		reports.EXPECT().
			WriteReport("/out/doublons.csv", gomock.Any(), gomock.Any()).
			Return(nil)

		uc := usecase.NewImportUseCase(nil, reports, testDefaults, testLogger())
		uc.WriteReports(&usecase.ImportResult{
			Missing:    []domain.MissingRow{{Name: "ghost"}},
			Duplicates: []domain.DuplicateRow{{ComputerName: "WS-DOE-01", Name: "doe"}},
		}, "/out")
	})
}
