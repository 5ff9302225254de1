package main

import "github.com/katalvlaran/pdptw-alns/cmd/alns-runner/commands"

func main() {
	commands.Execute()
}
