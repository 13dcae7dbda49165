package event

type KeySym int

const (
	KSymNone KeySym = iota

	// let ascii codes keep their values (adding 256 ensures gap)
	KSym_dummy_ KeySym = 256 + iota

	KSym0
	KSym1
	KSym2
	KSym3
	KSym4
	KSym5
	KSym6
	KSym7
	KSym8
	KSym9

	KSymA
	KSymB
	KSymC
	KSymD
	KSymE
	KSymF
	KSymG
	KSymH
	KSymI
	KSymJ
	KSymK
	KSymL
	KSymM
	KSymN
	KSymO
	KSymP
	KSymQ
	KSymR
	KSymS
	KSymT
	KSymU
	KSymV
	KSymW
	KSymX
	KSymY
	KSymZ

	KSymSpace
	KSymExclam      // !
	KSymDoubleQuote // "
	KSymNumberSign  // #
	KSymDollar      // $
	KSymPercent     // %
	KSymAmpersand   // &
	KSymApostrophe  // '
	KSymParentL     // (
	KSymParentR     // )
	KSymAsterisk    // *
	KSymPlus        // +
	KSymComma       // ,
	KSymMinus       // -
	KSymPeriod      // .
	KSymSlash       // /
	KSymColon       // :
	KSymSemicolon   // ;
	KSymLess        // <
	KSymEqual       // =
	KSymGreater     // >
	KSymQuestion    // ?
	KSymAt          // @
	KSymBracketL    // [
	KSymBracketR    // ]
	KSymBackSlash   // \

	KSymBackspace
	KSymReturn
	KSymEscape
	KSymHome
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymEnd
	KSymInsert
	KSymShiftL
	KSymShiftR
	KSymControlL
	KSymControlR
	KSymAltL
	KSymAltR
	KSymAltGr
	KSymSuperL // windows key
	KSymSuperR
	KSymDelete
	KSymTab
	KSymTabLeft
	KSymPrintScreen
	KSymPause
	KSymContextMenu

	KSymNumLock
	KSymCapsLock
	KSymScrollLock
	KSymShiftLock

	KSymGrave      // `
	KSymAcute      // ´
	KSymCircumflex // ^
	KSymTilde      // ~
	KSymCedilla    // ¸
	KSymBreve      // ˘
	KSymCaron      // ˇ
	KSymDiaresis   // ¨
	KSymRingAbove  // ˚
	KSymMacron     // ¯

	KSymF1
	KSymF2
	KSymF3
	KSymF4
	KSymF5
	KSymF6
	KSymF7
	KSymF8
	KSymF9
	KSymF10
	KSymF11
	KSymF12

	KSymKeypad0
	KSymKeypad1
	KSymKeypad2
	KSymKeypad3
	KSymKeypad4
	KSymKeypad5
	KSymKeypad6
	KSymKeypad7
	KSymKeypad8
	KSymKeypad9
	KSymKeypadMultiply
	KSymKeypadAdd
	KSymKeypadSubtract
	KSymKeypadDecimal
	KSymKeypadDivide
	KSymKeypadEnter
	KSymKeypadSeparator
	KSymKeypadDelete

	KSymVolumeUp
	KSymVolumeDown
	KSymMute

	KSymMultiKey
	KSymMenu
)

//----------

// KeySymRune returns the rune commonly associated with a keysym, or 0 for
// keysyms with no printable representation (arrows, modifiers, ...).
func KeySymRune(ks KeySym) rune {
	switch ks {
	case KSymSpace:
		return ' '

	case KSymGrave:
		return '`'
	case KSymAcute:
		return '´'
	case KSymCircumflex:
		return '^'
	case KSymTilde:
		return '~'
	case KSymCedilla:
		return '¸' // 0xb8
	case KSymBreve:
		return '˘' // 0x2d8
	case KSymCaron:
		return 'ˇ' // 0x2c7
	case KSymDiaresis:
		return '¨' // 0xa8
	case KSymRingAbove:
		return '˚' // 0x2da
	case KSymMacron:
		return '¯' // 0xaf

	case KSymKeypad0:
		return '0'
	case KSymKeypad1:
		return '1'
	case KSymKeypad2:
		return '2'
	case KSymKeypad3:
		return '3'
	case KSymKeypad4:
		return '4'
	case KSymKeypad5:
		return '5'
	case KSymKeypad6:
		return '6'
	case KSymKeypad7:
		return '7'
	case KSymKeypad8:
		return '8'
	case KSymKeypad9:
		return '9'

	case KSymKeypadMultiply:
		return '*'
	case KSymKeypadAdd:
		return '+'
	case KSymKeypadSubtract:
		return '-'
	case KSymKeypadDecimal:
		return '.'
	case KSymKeypadDivide:
		return '/'
	}
	return rune(0)
}
