package distractor

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// isDuplicate reports whether two strings are near-duplicates under the
// fuzzy partial-ratio score (0-100). The score is strictly compared, so a
// threshold of 90 lets 90 itself through.
func isDuplicate(a, b string, threshold int) bool {
	return fuzzy.PartialRatio(a, b) > threshold
}

// dropDuplicates partitions candidates into unique strings and near
// duplicates. A candidate is a duplicate when any other candidate scores
// above the threshold against it; the scan short-circuits on the first
// match. Both members of a mutually similar pair are typically classified
// as duplicates. Every input position lands in exactly one of the two
// returned slices.
//
// Example: ["example", "example as", "feature"] -> ["feature"], ["example", "example as"]
func dropDuplicates(candidates []string, threshold int) (unique, duplicates []string) {
	for i, candidate := range candidates {
		matched := false
		for j, other := range candidates {
			if i != j && isDuplicate(candidate, other, threshold) {
				matched = true
				break
			}
		}
		if matched {
			duplicates = append(duplicates, candidate)
		} else {
			unique = append(unique, candidate)
		}
	}
	return unique, duplicates
}

// isDuplicateOfAny reports whether the candidate fuzzily matches any of the
// kept strings.
func isDuplicateOfAny(candidate string, kept []string, threshold int) bool {
	for _, k := range kept {
		if isDuplicate(candidate, k, threshold) {
			return true
		}
	}
	return false
}
