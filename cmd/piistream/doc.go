// Package piistream provides the command-line interface for the piistream
// tool. It configures subcommands (process, tasks, filter), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/piistream/piistream/cmd/piistream"
//	func main() { piistream.Execute() }
package piistream
