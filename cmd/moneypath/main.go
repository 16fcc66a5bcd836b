package main

import (
	"os"

	"moneypath/cmd/moneypath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
