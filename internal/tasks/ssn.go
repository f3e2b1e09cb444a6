package tasks

import "regexp"

var reSSN = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)

// USSocialSecurity detects US Social Security Numbers. Scoped to English
// documents with the US country qualifier.
var USSocialSecurity = Task{
	Name:      "GOV_ID",
	Doc:       "US Social Security Number",
	Lang:      "en",
	Countries: []string{"US"},
	re:        reSSN,
	valid: func(s string) bool {
		// Area 000, 666 and 900+ are never issued.
		return s[:3] != "000" && s[:3] != "666" && s[0] != '9'
	},
}
