package usecase

import (
	"strings"

	"macenroll/internal/domain"
)

// Subsequence reports whether every character of needle appears in haystack
// in the same relative order, case-insensitively. Characters need not be
// contiguous: "jdoe" matches "WS-JDOE-01" and also "J1-D2-O3-E4". This is
// deliberately not substring containment.
func Subsequence(needle, haystack string) bool {
	want := []rune(strings.ToLower(needle))
	if len(want) == 0 {
		return true
	}
	i := 0
	for _, r := range strings.ToLower(haystack) {
		if r != want[i] {
			continue
		}
		i++
		if i == len(want) {
			return true
		}
	}
	return false
}

// matchNames runs every (asset row, roster entry) pair through the
// subsequence test. A roster name gains a bucket entry per hit; names with
// no hit at all never become keys, which the missing-detection passes rely
// on. One computer name may land in several buckets when it satisfies more
// than one roster name.
func matchNames(roster []domain.RosterEntry, assets []domain.AssetExportRow) map[string][]domain.MatchRow {
	buckets := make(map[string][]domain.MatchRow)
	for _, asset := range assets {
		for _, entry := range roster {
			if !Subsequence(entry.Name, asset.ComputerName) {
				continue
			}
			buckets[entry.Name] = append(buckets[entry.Name], domain.MatchRow{
				ComputerName: asset.ComputerName,
				UserName:     asset.UserName,
				SerialNumber: asset.SerialNumber,
			})
		}
	}
	return buckets
}

// classify partitions the buckets by match count. Exactly one match forwards
// the row to correlation; more than one emits a duplicate row per
// contributing computer name; zero emits a missing row. A second pass then
// re-scans the roster for names absent from the bucket map entirely, without
// deduplication against the first pass, so an unmatched name is reported
// more than once. Downstream consumers of missing.csv expect that shape.
func classify(roster []domain.RosterEntry, buckets map[string][]domain.MatchRow) (unique []domain.MatchRow, missing []domain.MissingRow, duplicates []domain.DuplicateRow) {
	seen := make(map[string]bool, len(roster))
	for _, entry := range roster {
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true

		rows := buckets[entry.Name]
		switch {
		case len(rows) == 1:
			unique = append(unique, rows[0])
		case len(rows) > 1:
			for _, row := range rows {
				duplicates = append(duplicates, domain.DuplicateRow{
					ComputerName: row.ComputerName,
					Name:         entry.Name,
				})
			}
		default:
			missing = append(missing, domain.MissingRow{Name: entry.Name})
		}
	}

	for _, entry := range roster {
		if _, ok := buckets[entry.Name]; !ok {
			missing = append(missing, domain.MissingRow{Name: entry.Name})
		}
	}
	return unique, missing, duplicates
}
