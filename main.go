package main

import (
	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
