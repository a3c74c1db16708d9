package main

import (
	"os"

	"gitlab.com/aiku-open-source/go-calendar/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
