//go:build debug

// Package debug carries diagnostics that are compiled in only with the
// "debug" build tag.
package debug

import (
	"fmt"
	"log"
)

const Enabled = true

func Log(format string, args ...interface{}) {
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}
