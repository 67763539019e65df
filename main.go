package main

import (
	"os"

	"github.com/LovationAdmin/expense-api/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
