package windriver

// https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	_VK_BACK     = 0x08
	_VK_TAB      = 0x09
	_VK_RETURN   = 0x0D
	_VK_SHIFT    = 0x10
	_VK_CONTROL  = 0x11
	_VK_MENU     = 0x12 // alt
	_VK_PAUSE    = 0x13
	_VK_CAPITAL  = 0x14 // caps-lock
	_VK_ESCAPE   = 0x1B
	_VK_SPACE    = 0x20
	_VK_PRIOR    = 0x21 // page up
	_VK_NEXT     = 0x22 // page down
	_VK_END      = 0x23
	_VK_HOME     = 0x24
	_VK_LEFT     = 0x25
	_VK_UP       = 0x26
	_VK_RIGHT    = 0x27
	_VK_DOWN     = 0x28
	_VK_SNAPSHOT = 0x2C // print screen
	_VK_INSERT   = 0x2D
	_VK_DELETE   = 0x2E

	_VK_LWIN = 0x5B // windows key
	_VK_RWIN = 0x5C
	_VK_APPS = 0x5D // context menu

	_VK_NUMPAD0  = 0x60
	_VK_MULTIPLY = 0x6A
	_VK_ADD      = 0x6B
	_VK_SUBTRACT = 0x6D
	_VK_DECIMAL  = 0x6E
	_VK_DIVIDE   = 0x6F

	_VK_F1  = 0x70
	_VK_F2  = 0x71
	_VK_F3  = 0x72
	_VK_F4  = 0x73
	_VK_F5  = 0x74
	_VK_F6  = 0x75
	_VK_F7  = 0x76
	_VK_F8  = 0x77
	_VK_F9  = 0x78
	_VK_F10 = 0x79
	_VK_F11 = 0x7A
	_VK_F12 = 0x7B

	_VK_NUMLOCK = 0x90
	_VK_SCROLL  = 0x91

	_VK_LSHIFT   = 0xA0
	_VK_RSHIFT   = 0xA1
	_VK_LCONTROL = 0xA2
	_VK_RCONTROL = 0xA3
	_VK_LMENU    = 0xA4
	_VK_RMENU    = 0xA5

	_VK_VOLUME_MUTE = 0xAD
	_VK_VOLUME_DOWN = 0xAE
	_VK_VOLUME_UP   = 0xAF
)

const (
	kstateToggleBit = 1
	kstateDownBit   = 1 << (8 - 1)
)
