package main

import "github.com/knowhow-tools/probe/cmd"

func main() {
	cmd.Execute()
}
