package main

import "github.com/piistream/piistream/cmd/piistream"

func main() { piistream.Execute() }
