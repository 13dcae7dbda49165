//go:build windows

package windriver

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const _MAPVK_VK_TO_VSC_EX = 4

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
	procMapVirtualKeyExW  = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx       = user32.NewProc("ToUnicodeEx")
	procGetKeyState       = user32.NewProc("GetKeyState")
)

// SystemAPI is the live user32 implementation of NativeAPI.
type SystemAPI struct{}

func (SystemAPI) ActiveLocale() uint64 {
	r1, _, _ := procGetKeyboardLayout.Call(0)
	return uint64(r1)
}

func (SystemAPI) MapVirtualKey(vk uint32, locale uint64) uint32 {
	r1, _, _ := procMapVirtualKeyExW.Call(
		uintptr(vk),
		_MAPVK_VK_TO_VSC_EX,
		uintptr(locale))
	return uint32(r1)
}

func (SystemAPI) ToUnicode(vk, scancode uint32, keyState *[256]byte, buf []uint16, locale uint64) int {
	r1, _, _ := procToUnicodeEx.Call(
		uintptr(vk),
		uintptr(scancode),
		uintptr(unsafe.Pointer(&keyState[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
		uintptr(locale))
	return int(int32(r1))
}

func (SystemAPI) KeyPressed(vk int32) bool {
	r1, _, _ := procGetKeyState.Call(uintptr(vk))
	return uint16(r1)&(1<<15) != 0
}

//----------

var (
	sharedCache     *LayoutCache
	sharedCacheOnce sync.Once
)

// SharedCache returns the process-wide layout cache over the live OS,
// initialized on first use and never torn down. Tests and callers that
// need isolation use NewLayoutCache directly.
func SharedCache() *LayoutCache {
	sharedCacheOnce.Do(func() {
		sharedCache = NewLayoutCache(SystemAPI{})
	})
	return sharedCache
}
