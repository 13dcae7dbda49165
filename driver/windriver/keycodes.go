package windriver

import (
	"keynorm/event"
)

// vkeyToNonPrintable resolves virtual keys with a locale-independent,
// non-printable meaning (arrows, function keys, modifiers, navigation).
// Printable keys return KSymNone and go through character composition.
func vkeyToNonPrintable(vkey uint32) event.KeySym {
	switch vkey {
	case _VK_BACK:
		return event.KSymBackspace
	case _VK_TAB:
		return event.KSymTab
	case _VK_RETURN:
		return event.KSymReturn
	case _VK_ESCAPE:
		return event.KSymEscape
	case _VK_PAUSE:
		return event.KSymPause
	case _VK_SNAPSHOT:
		return event.KSymPrintScreen

	case _VK_HOME:
		return event.KSymHome
	case _VK_END:
		return event.KSymEnd
	case _VK_PRIOR:
		return event.KSymPageUp
	case _VK_NEXT:
		return event.KSymPageDown
	case _VK_LEFT:
		return event.KSymLeft
	case _VK_UP:
		return event.KSymUp
	case _VK_RIGHT:
		return event.KSymRight
	case _VK_DOWN:
		return event.KSymDown
	case _VK_INSERT:
		return event.KSymInsert
	case _VK_DELETE:
		return event.KSymDelete

	case _VK_SHIFT, _VK_LSHIFT:
		return event.KSymShiftL
	case _VK_RSHIFT:
		return event.KSymShiftR
	case _VK_CONTROL, _VK_LCONTROL:
		return event.KSymControlL
	case _VK_RCONTROL:
		return event.KSymControlR
	case _VK_MENU, _VK_LMENU:
		return event.KSymAltL
	case _VK_RMENU:
		return event.KSymAltR
	case _VK_LWIN:
		return event.KSymSuperL
	case _VK_RWIN:
		return event.KSymSuperR
	case _VK_APPS:
		return event.KSymMenu

	case _VK_CAPITAL:
		return event.KSymCapsLock
	case _VK_NUMLOCK:
		return event.KSymNumLock
	case _VK_SCROLL:
		return event.KSymScrollLock

	case _VK_F1:
		return event.KSymF1
	case _VK_F2:
		return event.KSymF2
	case _VK_F3:
		return event.KSymF3
	case _VK_F4:
		return event.KSymF4
	case _VK_F5:
		return event.KSymF5
	case _VK_F6:
		return event.KSymF6
	case _VK_F7:
		return event.KSymF7
	case _VK_F8:
		return event.KSymF8
	case _VK_F9:
		return event.KSymF9
	case _VK_F10:
		return event.KSymF10
	case _VK_F11:
		return event.KSymF11
	case _VK_F12:
		return event.KSymF12

	case _VK_VOLUME_MUTE:
		return event.KSymMute
	case _VK_VOLUME_DOWN:
		return event.KSymVolumeDown
	case _VK_VOLUME_UP:
		return event.KSymVolumeUp
	}
	return event.KSymNone
}

//----------

// scancodeToKeyCode maps an extended scancode (scancode set 1, escape
// prefix in the high byte) to the physical key code.
// https://download.microsoft.com/download/1/6/1/161ba512-40e2-4cc9-843a-923143f3456c/scancode.doc
func scancodeToKeyCode(sc uint16) event.KeyCode {
	switch sc {
	case 0x01:
		return event.KCEscape
	case 0x02:
		return event.KCDigit1
	case 0x03:
		return event.KCDigit2
	case 0x04:
		return event.KCDigit3
	case 0x05:
		return event.KCDigit4
	case 0x06:
		return event.KCDigit5
	case 0x07:
		return event.KCDigit6
	case 0x08:
		return event.KCDigit7
	case 0x09:
		return event.KCDigit8
	case 0x0a:
		return event.KCDigit9
	case 0x0b:
		return event.KCDigit0
	case 0x0c:
		return event.KCMinus
	case 0x0d:
		return event.KCEqual
	case 0x0e:
		return event.KCBackspace
	case 0x0f:
		return event.KCTab

	case 0x10:
		return event.KCKeyQ
	case 0x11:
		return event.KCKeyW
	case 0x12:
		return event.KCKeyE
	case 0x13:
		return event.KCKeyR
	case 0x14:
		return event.KCKeyT
	case 0x15:
		return event.KCKeyY
	case 0x16:
		return event.KCKeyU
	case 0x17:
		return event.KCKeyI
	case 0x18:
		return event.KCKeyO
	case 0x19:
		return event.KCKeyP
	case 0x1a:
		return event.KCBracketL
	case 0x1b:
		return event.KCBracketR
	case 0x1c:
		return event.KCEnter
	case 0x1d:
		return event.KCControlL

	case 0x1e:
		return event.KCKeyA
	case 0x1f:
		return event.KCKeyS
	case 0x20:
		return event.KCKeyD
	case 0x21:
		return event.KCKeyF
	case 0x22:
		return event.KCKeyG
	case 0x23:
		return event.KCKeyH
	case 0x24:
		return event.KCKeyJ
	case 0x25:
		return event.KCKeyK
	case 0x26:
		return event.KCKeyL
	case 0x27:
		return event.KCSemicolon
	case 0x28:
		return event.KCQuote
	case 0x29:
		return event.KCBackquote
	case 0x2a:
		return event.KCShiftL
	case 0x2b:
		return event.KCBackslash

	case 0x2c:
		return event.KCKeyZ
	case 0x2d:
		return event.KCKeyX
	case 0x2e:
		return event.KCKeyC
	case 0x2f:
		return event.KCKeyV
	case 0x30:
		return event.KCKeyB
	case 0x31:
		return event.KCKeyN
	case 0x32:
		return event.KCKeyM
	case 0x33:
		return event.KCComma
	case 0x34:
		return event.KCPeriod
	case 0x35:
		return event.KCSlash
	case 0x36:
		return event.KCShiftR
	case 0x37:
		return event.KCNumpadMultiply
	case 0x38:
		return event.KCAltL
	case 0x39:
		return event.KCSpace
	case 0x3a:
		return event.KCCapsLock

	case 0x3b:
		return event.KCF1
	case 0x3c:
		return event.KCF2
	case 0x3d:
		return event.KCF3
	case 0x3e:
		return event.KCF4
	case 0x3f:
		return event.KCF5
	case 0x40:
		return event.KCF6
	case 0x41:
		return event.KCF7
	case 0x42:
		return event.KCF8
	case 0x43:
		return event.KCF9
	case 0x44:
		return event.KCF10
	case 0x57:
		return event.KCF11
	case 0x58:
		return event.KCF12

	case 0x45:
		return event.KCNumLock
	case 0x46:
		return event.KCScrollLock
	case 0x47:
		return event.KCNumpad7
	case 0x48:
		return event.KCNumpad8
	case 0x49:
		return event.KCNumpad9
	case 0x4a:
		return event.KCNumpadSubtract
	case 0x4b:
		return event.KCNumpad4
	case 0x4c:
		return event.KCNumpad5
	case 0x4d:
		return event.KCNumpad6
	case 0x4e:
		return event.KCNumpadAdd
	case 0x4f:
		return event.KCNumpad1
	case 0x50:
		return event.KCNumpad2
	case 0x51:
		return event.KCNumpad3
	case 0x52:
		return event.KCNumpad0
	case 0x53:
		return event.KCNumpadDecimal
	case 0x56:
		return event.KCIntlBackslash

	// escaped scancodes (0xe0 prefix)
	case 0xe01c:
		return event.KCNumpadEnter
	case 0xe01d:
		return event.KCControlR
	case 0xe020:
		return event.KCMute
	case 0xe02e:
		return event.KCVolumeDown
	case 0xe030:
		return event.KCVolumeUp
	case 0xe035:
		return event.KCNumpadDivide
	case 0xe037:
		return event.KCPrintScreen
	case 0xe038:
		return event.KCAltR
	case 0xe047:
		return event.KCHome
	case 0xe048:
		return event.KCUp
	case 0xe049:
		return event.KCPageUp
	case 0xe04b:
		return event.KCLeft
	case 0xe04d:
		return event.KCRight
	case 0xe04f:
		return event.KCEnd
	case 0xe050:
		return event.KCDown
	case 0xe051:
		return event.KCPageDown
	case 0xe052:
		return event.KCInsert
	case 0xe053:
		return event.KCDelete
	case 0xe05b:
		return event.KCSuperL
	case 0xe05c:
		return event.KCSuperR
	case 0xe05d:
		return event.KCContextMenu
	}
	return event.KCUnidentified
}
