package event

// KeyCode identifies a physical key position, independent of layout and
// locale. Distinct address space from KeySym: KCKeyA is the key at the
// "A" position of a US keyboard whatever character the active layout
// assigns to it.
type KeyCode int

const (
	KCUnidentified KeyCode = iota

	KCEscape
	KCDigit1
	KCDigit2
	KCDigit3
	KCDigit4
	KCDigit5
	KCDigit6
	KCDigit7
	KCDigit8
	KCDigit9
	KCDigit0
	KCMinus
	KCEqual
	KCBackspace
	KCTab

	KCKeyQ
	KCKeyW
	KCKeyE
	KCKeyR
	KCKeyT
	KCKeyY
	KCKeyU
	KCKeyI
	KCKeyO
	KCKeyP
	KCBracketL
	KCBracketR
	KCEnter
	KCControlL

	KCKeyA
	KCKeyS
	KCKeyD
	KCKeyF
	KCKeyG
	KCKeyH
	KCKeyJ
	KCKeyK
	KCKeyL
	KCSemicolon
	KCQuote
	KCBackquote
	KCShiftL
	KCBackslash

	KCKeyZ
	KCKeyX
	KCKeyC
	KCKeyV
	KCKeyB
	KCKeyN
	KCKeyM
	KCComma
	KCPeriod
	KCSlash
	KCShiftR

	KCAltL
	KCSpace
	KCCapsLock

	KCF1
	KCF2
	KCF3
	KCF4
	KCF5
	KCF6
	KCF7
	KCF8
	KCF9
	KCF10
	KCF11
	KCF12

	KCNumLock
	KCScrollLock
	KCNumpad0
	KCNumpad1
	KCNumpad2
	KCNumpad3
	KCNumpad4
	KCNumpad5
	KCNumpad6
	KCNumpad7
	KCNumpad8
	KCNumpad9
	KCNumpadMultiply
	KCNumpadAdd
	KCNumpadSubtract
	KCNumpadDecimal
	KCNumpadDivide
	KCNumpadEnter

	KCIntlBackslash // extra key of 102-key layouts, next to left shift

	KCControlR
	KCAltR
	KCSuperL // windows key
	KCSuperR
	KCContextMenu
	KCPrintScreen
	KCPause

	KCInsert
	KCDelete
	KCHome
	KCEnd
	KCPageUp
	KCPageDown
	KCUp
	KCDown
	KCLeft
	KCRight

	KCVolumeUp
	KCVolumeDown
	KCMute
)
