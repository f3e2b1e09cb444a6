package tasks

import (
	"regexp"
	"strconv"
	"strings"
)

var reIPv4 = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

// IPAddress detects IPv4 addresses with in-range octets.
var IPAddress = Task{
	Name:  "IP_ADDRESS",
	Doc:   "IPv4 addresses",
	Lang:  LangAny,
	re:    reIPv4,
	valid: validOctets,
}

func validOctets(s string) bool {
	for _, part := range strings.Split(s, ".") {
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return false
		}
		if len(part) > 1 && part[0] == '0' {
			return false
		}
	}
	return true
}
