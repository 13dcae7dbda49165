//go:build linux || freebsd || netbsd || openbsd

package main

import (
	"flag"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"keynorm/driver/xdriver/xinput"
	"keynorm/event"
)

var displayFlag = flag.String("display", "", "x display (defaults to $DISPLAY)")

func run() error {
	conn, err := xgb.NewConnDisplay(*displayFlag)
	if err != nil {
		return err
	}
	defer conn.Close()

	mk := xinput.NewModifierKeymap()
	if err := mk.Reset(conn); err != nil {
		return err
	}
	fmt.Println("modifier keycodes:")
	for kc := 0; kc < 256; kc++ {
		if m, ok := mk.Get(xproto.Keycode(kc)); ok {
			fmt.Printf("\tkeycode %v: %v\n", kc, m)
		}
	}

	km, err := xinput.NewKMap(conn)
	if err != nil {
		return err
	}
	fmt.Println("resolved keys (no modifiers / shift):")
	for kc := 0; kc < 256; kc++ {
		k1 := km.ResolveKey(xproto.Keycode(kc), 0)
		k2 := km.ResolveKey(xproto.Keycode(kc), xproto.KeyButMaskShift)
		if _, ok := k1.(event.Unidentified); ok {
			continue
		}
		fmt.Printf("\tkeycode %v: %s / %s\n", kc, keyStr(k1), keyStr(k2))
	}
	return nil
}

func keyStr(k event.Key) string {
	return spew.Sprintf("%#v", k)
}
