//go:build windows

package codepage

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetACP              = kernel32.NewProc("GetACP")
	procMultiByteToWideChar = kernel32.NewProc("MultiByteToWideChar")
	procWideCharToMultiByte = kernel32.NewProc("WideCharToMultiByte")
)

// System returns the process's ANSI code page.
func System() CodePage {
	acp, _, _ := procGetACP.Call()
	if acp == 0 {
		return UTF8
	}
	return CodePage(acp)
}

// SystemConverter returns a Converter backed by MultiByteToWideChar and
// WideCharToMultiByte.
func SystemConverter() Converter {
	return windowsConverter{}
}

type windowsConverter struct{}

// Lengths are passed explicitly so no terminating NUL is converted.
func (windowsConverter) ToUTF16(cp CodePage, src []byte, dst []uint16) int {
	if len(src) == 0 {
		return 0
	}
	var out *uint16
	if len(dst) > 0 {
		out = &dst[0]
	}
	n, _, _ := procMultiByteToWideChar.Call(
		uintptr(cp), 0,
		uintptr(unsafe.Pointer(&src[0])), uintptr(len(src)),
		uintptr(unsafe.Pointer(out)), uintptr(len(dst)),
	)
	return int(int32(n))
}

func (windowsConverter) FromUTF16(cp CodePage, src []uint16, dst []byte) int {
	if len(src) == 0 {
		return 0
	}
	var out *byte
	if len(dst) > 0 {
		out = &dst[0]
	}
	n, _, _ := procWideCharToMultiByte.Call(
		uintptr(cp), 0,
		uintptr(unsafe.Pointer(&src[0])), uintptr(len(src)),
		uintptr(unsafe.Pointer(out)), uintptr(len(dst)),
		0, 0,
	)
	return int(int32(n))
}
