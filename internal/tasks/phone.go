package tasks

import "regexp"

// International form only: leading + and country code, separators allowed.
var rePhone = regexp.MustCompile(`\+\d{1,3}[ .-]?\d(?:[ .-]?\d){6,12}`)

// PhoneNumber detects international phone numbers. The validator keeps the
// total digit count inside the E.164 envelope.
var PhoneNumber = Task{
	Name: "PHONE_NUMBER",
	Doc:  "International phone numbers",
	Lang: LangAny,
	re:   rePhone,
	valid: func(s string) bool {
		n := digitCount(s)
		return n >= 8 && n <= 15
	},
}
