package main

import (
	"os"

	"github.com/wlau/cv-job-matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
