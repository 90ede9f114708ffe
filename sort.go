package tagspec

import "sort"

// sortRules orders rules by descending numeric priority in place.
// The sort is stable: rules with equal priority keep their input order,
// so the four DefaultSpecs ref rules stay in branch/tag/pr order.
func sortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority() > rules[j].Priority()
	})
}
