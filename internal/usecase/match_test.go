package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"macenroll/internal/domain"
)

func TestSubsequence(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack string
		want     bool
	}{
		{"contiguous substring", "jdoe", "WS-JDOE-01", true},
		{"case insensitive", "JDoe", "ws-jdoe-01", true},
		{"interspersed characters", "jdoe", "J1-D2-O3-E4", true},
		{"order matters", "jdoe", "WS-EODJ-01", false},
		{"not present", "smith", "WS-JDOE-01", false},
		{"partial prefix only", "jdoex", "WS-JDOE-01", false},
		{"needle longer than haystack", "jonathandoe", "JDOE", false},
		{"empty needle matches anything", "", "WS-JDOE-01", true},
		{"empty haystack", "j", "", false},
		{"repeated characters honored", "oo", "WS-DOE-01", false},
		{"repeated characters present", "oo", "WS-DOO-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subsequence(tt.needle, tt.haystack))
		})
	}
}

func TestMatchNames(t *testing.T) {
	roster := []domain.RosterEntry{{Name: "jdoe"}, {Name: "doe"}, {Name: "smith"}}
	assets := []domain.AssetExportRow{
		{ComputerName: "WS-JDOE-01", SerialNumber: "SN1", UserName: "John Doe"},
		{ComputerName: "WS-DOE-02", SerialNumber: "SN2", UserName: "Jane Doe"},
	}

	buckets := matchNames(roster, assets)

	// "jdoe" only matches the first machine; "doe" is a subsequence of both.
	assert.Len(t, buckets["jdoe"], 1)
	assert.Len(t, buckets["doe"], 2)

	// One computer name satisfying two roster names is recorded under both.
	assert.Equal(t, "WS-JDOE-01", buckets["jdoe"][0].ComputerName)
	assert.Equal(t, "WS-JDOE-01", buckets["doe"][0].ComputerName)

	// Unmatched names never become keys; the missing passes depend on that.
	_, ok := buckets["smith"]
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	roster := []domain.RosterEntry{{Name: "jdoe"}, {Name: "doe"}, {Name: "smith"}}
	buckets := map[string][]domain.MatchRow{
		"jdoe": {{ComputerName: "WS-JDOE-01", UserName: "John Doe", SerialNumber: "SN1"}},
		"doe": {
			{ComputerName: "WS-JDOE-01", UserName: "John Doe", SerialNumber: "SN1"},
			{ComputerName: "WS-DOE-02", UserName: "Jane Doe", SerialNumber: "SN2"},
		},
	}

	unique, missing, duplicates := classify(roster, buckets)

	assert.Equal(t, []domain.MatchRow{
		{ComputerName: "WS-JDOE-01", UserName: "John Doe", SerialNumber: "SN1"},
	}, unique)

	assert.Equal(t, []domain.DuplicateRow{
		{ComputerName: "WS-JDOE-01", Name: "doe"},
		{ComputerName: "WS-DOE-02", Name: "doe"},
	}, duplicates)

	// An unmatched name is reported by both missing passes: once because its
	// bucket is empty, once because it is absent from the bucket map.
	assert.Equal(t, []domain.MissingRow{
		{Name: "smith"},
		{Name: "smith"},
	}, missing)
}

func TestClassifyAllMatched(t *testing.T) {
	roster := []domain.RosterEntry{{Name: "jdoe"}}
	buckets := map[string][]domain.MatchRow{
		"jdoe": {{ComputerName: "WS-JDOE-01"}},
	}

	unique, missing, duplicates := classify(roster, buckets)

	assert.Len(t, unique, 1)
	assert.Empty(t, missing)
	assert.Empty(t, duplicates)
}

func BenchmarkMatchNames(b *testing.B) {
	var roster []domain.RosterEntry
	var assets []domain.AssetExportRow
	for i := 0; i < 200; i++ {
		roster = append(roster, domain.RosterEntry{Name: "user" + string(rune('a'+i%26))})
		assets = append(assets, domain.AssetExportRow{
			ComputerName: "WS-USER" + string(rune('A'+i%26)) + "-01",
			SerialNumber: "SN000123456",
			UserName:     "Some User",
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matchNames(roster, assets)
	}
}
