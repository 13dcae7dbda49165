// Command kbdump connects to the platform keyboard interface and dumps
// the decoded modifier and key tables. Useful to inspect what the
// normalization layer sees for the current layout.
package main

import (
	"flag"
	"log"
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
