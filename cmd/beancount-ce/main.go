// Package main provides the entry point for the beancount-ce CLI application.
package main

import (
	"github.com/ArthurFDLR/beancount-ce/cmd/batch"
	"github.com/ArthurFDLR/beancount-ce/cmd/extract"
	"github.com/ArthurFDLR/beancount-ce/cmd/probe"
	"github.com/ArthurFDLR/beancount-ce/cmd/root"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(probe.Cmd)

	root.Execute()
}
