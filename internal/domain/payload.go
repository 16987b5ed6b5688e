package domain

import (
	"encoding/json"
	"fmt"
)

// intBool encodes to the integer literals 0/1 instead of JSON booleans. The
// downstream enrollment consumer expects this encoding for the extended
// schema fields.
type intBool bool

func (b intBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (b *intBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("invalid integer boolean %q", data)
	}
	return nil
}

// wirePayload is the fixed-key wire shape of one enrollment record. The key
// casing is inconsistent on purpose; it is what the consumer accepts.
type wirePayload struct {
	EndUserName            string  `json:"EndUserName"`
	AssetNumber            string  `json:"AssetNumber"`
	LocationGroupID        string  `json:"LocationGroupId"`
	MessageType            int     `json:"MessageType"`
	SerialNumber           string  `json:"SerialNumber"`
	PlatformID             int     `json:"PlatformId"`
	FriendlyName           string  `json:"FriendlyName"`
	Ownership              string  `json:"Ownership"`
	EmployeeType           string  `json:"employeetypemacssc"`
	VPNSelect              string  `json:"vpnguestmacssc"`
	TableauDesktop         intBool `json:"tableauDesktopmacssc"`
	TableauPrep            intBool `json:"tableauPrepmacssc"`
	Filemaker              intBool `json:"filemakermacssc"`
	Mindmanager            intBool `json:"mindmanagermacssc"`
	LinaException          intBool `json:"linaexceptionssc"`
	AcrobatReaderException intBool `json:"acrobatreaderexceptionssc"`
	DeviceType             string  `json:"devicetypemacssc"`
	Sciper                 string  `json:"SCIPER"`
}

// EncodePayload serializes one record to its wire JSON. The list-management
// ID is deliberately absent.
func EncodePayload(rec EnrollmentRecord) ([]byte, error) {
	return json.Marshal(wirePayload{
		EndUserName:            rec.EndUserName,
		AssetNumber:            rec.AssetNumber,
		LocationGroupID:        rec.LocationGroupID,
		MessageType:            rec.MessageType,
		SerialNumber:           rec.SerialNumber,
		PlatformID:             rec.PlatformID,
		FriendlyName:           rec.FriendlyName,
		Ownership:              rec.Ownership,
		EmployeeType:           rec.EmployeeType,
		VPNSelect:              rec.VPNSelect,
		TableauDesktop:         intBool(rec.TableauDesktop),
		TableauPrep:            intBool(rec.TableauPrep),
		Filemaker:              intBool(rec.Filemaker),
		Mindmanager:            intBool(rec.Mindmanager),
		LinaException:          intBool(rec.LinaException),
		AcrobatReaderException: intBool(rec.AcrobatReaderException),
		DeviceType:             rec.DeviceType,
		Sciper:                 rec.Sciper,
	})
}

// PayloadFilename is the upload name for one record's payload.
func PayloadFilename(rec EnrollmentRecord) string {
	return fmt.Sprintf("scx-%s.json", rec.AssetNumber)
}
