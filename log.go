package niceview

import (
	"log"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("NICEVIEW_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf(format, args...)
	}
}
