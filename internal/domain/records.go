package domain

// RosterEntry is a single name token from the roster file, to be searched
// for inside asset computer names.
type RosterEntry struct {
	Name string `json:"name"`
}

// AssetExportRow is one row of the asset-management export.
type AssetExportRow struct {
	ComputerName string `json:"computername"`
	SerialNumber string `json:"serialnumber"`
	UserName     string `json:"username"`
}

// InventoryRow is one row of the inventory export. Columns beyond the two
// required ones are preserved opaquely in Extra.
type InventoryRow struct {
	SerialNumber    string            `json:"serialnumber"`
	InventoryNumber string            `json:"inventorynumber"`
	Extra           map[string]string `json:"-"`
}

// MatchRow is one name-matcher hit: the asset row fields that survive into
// correlation. One asset row may appear under several roster names.
type MatchRow struct {
	ComputerName string `json:"computername"`
	UserName     string `json:"username"`
	SerialNumber string `json:"serialnumber"`
}

// EnrollmentRecord is the terminal entity, one per correlated (match row x
// inventory row) combination, or one per manual entry. ID is a generated
// identifier for list management only and never appears in the wire payload.
type EnrollmentRecord struct {
	ID              string `json:"id"`
	EndUserName     string `json:"endUserName"`
	AssetNumber     string `json:"assetNumber"`
	LocationGroupID string `json:"locationGroupId"`
	MessageType     int    `json:"messageType"`
	SerialNumber    string `json:"serialNumber"`
	PlatformID      int    `json:"platformId"`
	FriendlyName    string `json:"friendlyName"`
	Ownership       string `json:"ownership"`

	// Extended schema fields. Bulk import leaves these at their zero
	// values; only manual entry populates them.
	EmployeeType           string `json:"employeeType"`
	VPNSelect              string `json:"vpnSelect"`
	TableauDesktop         bool   `json:"tableauDesktop"`
	TableauPrep            bool   `json:"tableauPrep"`
	Filemaker              bool   `json:"filemaker"`
	Mindmanager            bool   `json:"mindmanager"`
	LinaException          bool   `json:"linaException"`
	AcrobatReaderException bool   `json:"acrobatReaderException"`
	DeviceType             string `json:"deviceType"`
	Sciper                 string `json:"sciper"`
}
