package main

import (
	"os"

	"github.com/voicegate/phonemode/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
