//go:build windows

package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"keynorm/driver/windriver"
)

func run() error {
	c := windriver.SharedCache()
	localeID, layout := c.GetCurrentLayout()
	fmt.Printf("locale: 0x%x\n", localeID)
	fmt.Printf("has altgraph: %v\n", layout.HasAltGraph)
	fmt.Printf("agnostic modifiers: %b\n", c.GetAgnosticMods())

	spew.Config.Indent = "\t"
	fmt.Println("key table (no modifiers):")
	spew.Dump(layout.Keys[0])
	fmt.Println("key table (shift):")
	spew.Dump(layout.Keys[windriver.ModShift])
	return nil
}
