package usecase

import (
	"github.com/google/uuid"

	"macenroll/internal/conf"
	"macenroll/internal/domain"
)

// Device-type categories selectable on manual entry. Each maps to a fixed
// location group; anything unrecognized falls back to the laptop group.
const (
	DeviceTypeLaptop    = "laptop"
	DeviceTypeDesktop   = "desktop"
	DeviceTypeClassroom = "classroom"
)

var deviceTypeLocationGroups = map[string]string{
	DeviceTypeLaptop:    "570",
	DeviceTypeDesktop:   "571",
	DeviceTypeClassroom: "572",
}

// LocationGroupForDeviceType resolves the location group for a device-type
// label. Unknown labels resolve to the laptop group rather than failing.
func LocationGroupForDeviceType(label string) string {
	if id, ok := deviceTypeLocationGroups[label]; ok {
		return id
	}
	return deviceTypeLocationGroups[DeviceTypeLaptop]
}

// serialSuffix is the trailing-6-character join key; shorter serials are
// used whole.
func serialSuffix(s string) string {
	if len(s) <= 6 {
		return s
	}
	return s[len(s)-6:]
}

// correlate joins uniquely-matched rows against the inventory by exact,
// case-sensitive trailing-serial equality and assembles one record per
// combination. Rows with no inventory hit produce nothing.
func correlate(rows []domain.MatchRow, inventory []domain.InventoryRow, defaults conf.Defaults) []domain.EnrollmentRecord {
	var records []domain.EnrollmentRecord
	for _, row := range rows {
		suffix := serialSuffix(row.SerialNumber)
		for _, inv := range inventory {
			if serialSuffix(inv.SerialNumber) != suffix {
				continue
			}
			records = append(records, newBulkRecord(row, inv, defaults))
		}
	}
	return records
}

// newBulkRecord builds a record from a correlation. Extended schema fields
// stay at their zero values on the bulk path.
func newBulkRecord(row domain.MatchRow, inv domain.InventoryRow, defaults conf.Defaults) domain.EnrollmentRecord {
	return domain.EnrollmentRecord{
		ID:              uuid.NewString(),
		FriendlyName:    row.ComputerName,
		EndUserName:     row.UserName,
		SerialNumber:    row.SerialNumber,
		AssetNumber:     inv.InventoryNumber,
		LocationGroupID: defaults.LocationGroupID,
		PlatformID:      defaults.PlatformID,
		MessageType:     defaults.MessageType,
		Ownership:       defaults.Ownership,
	}
}

// ManualEntry carries the user-chosen fields of a single hand-entered record.
type ManualEntry struct {
	FriendlyName string
	EndUserName  string
	SerialNumber string
	AssetNumber  string
	DeviceType   string
	EmployeeType string
	VPNSelect    string
	Sciper       string

	TableauDesktop         bool
	TableauPrep            bool
	Filemaker              bool
	Mindmanager            bool
	LinaException          bool
	AcrobatReaderException bool
}

// NewManualRecord builds a record from a manual entry. The location group
// comes from the device-type lookup instead of the configured default; the
// remaining constant fields come from the configuration snapshot.
func NewManualRecord(entry ManualEntry, defaults conf.Defaults) domain.EnrollmentRecord {
	return domain.EnrollmentRecord{
		ID:              uuid.NewString(),
		FriendlyName:    entry.FriendlyName,
		EndUserName:     entry.EndUserName,
		SerialNumber:    entry.SerialNumber,
		AssetNumber:     entry.AssetNumber,
		LocationGroupID: LocationGroupForDeviceType(entry.DeviceType),
		PlatformID:      defaults.PlatformID,
		MessageType:     defaults.MessageType,
		Ownership:       defaults.Ownership,

		EmployeeType:           entry.EmployeeType,
		VPNSelect:              entry.VPNSelect,
		TableauDesktop:         entry.TableauDesktop,
		TableauPrep:            entry.TableauPrep,
		Filemaker:              entry.Filemaker,
		Mindmanager:            entry.Mindmanager,
		LinaException:          entry.LinaException,
		AcrobatReaderException: entry.AcrobatReaderException,
		DeviceType:             entry.DeviceType,
		Sciper:                 entry.Sciper,
	}
}
