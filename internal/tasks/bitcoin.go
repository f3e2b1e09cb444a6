package tasks

import "regexp"

// Legacy P2PKH/P2SH addresses: base58 alphabet (no 0, O, I, l), 26-35
// characters after the version prefix.
var reBitcoin = regexp.MustCompile(`\b[13][1-9A-HJ-NP-Za-km-z]{25,34}\b`)

// BitcoinAddress detects bitcoin wallet addresses.
var BitcoinAddress = Task{
	Name: "BITCOIN_ADDRESS",
	Doc:  "Bitcoin addresses",
	Lang: LangAny,
	re:   reBitcoin,
}
