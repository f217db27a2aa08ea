package main

import "github.com/OpenTraceLab/OpenTraceDevMap/cmd/devmap/cmd"

func main() {
	cmd.Execute()
}
