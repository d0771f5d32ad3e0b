package main

import (
	"os"

	"github.com/feedback-collector/feedback-collector/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
