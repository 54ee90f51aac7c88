// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command fnl prints fastlog results next to math.Log for a list of values.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
