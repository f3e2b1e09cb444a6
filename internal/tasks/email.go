package tasks

import "regexp"

var reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailAddress detects email addresses in any language.
var EmailAddress = Task{
	Name: "EMAIL_ADDRESS",
	Doc:  "Email addresses",
	Lang: LangAny,
	re:   reEmail,
}
