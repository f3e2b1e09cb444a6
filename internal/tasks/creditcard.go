package tasks

import "regexp"

// 13-19 digits, optionally grouped by single spaces or dashes.
var reCreditCard = regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`)

// CreditCard detects payment card numbers, validated with the Luhn
// checksum so arbitrary digit runs do not fire.
var CreditCard = Task{
	Name:  "CREDIT_CARD",
	Doc:   "Credit card numbers (Luhn-validated)",
	Lang:  LangAny,
	re:    reCreditCard,
	valid: luhnValid,
}
