package main

import (
	"github.com/joseph-ayodele/statements-tracker/internal/cli"
)

func main() {
	cli.Execute()
}
