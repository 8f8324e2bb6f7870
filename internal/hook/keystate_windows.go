//go:build windows

package hook

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetKeyState      = user32.NewProc("GetKeyState")
	procSendInput        = user32.NewProc("SendInput")
)

const (
	inputKeyboard    = 1
	keyeventfUnicode = 0x0004
)

// SystemKeys queries the live keyboard state.
type SystemKeys struct{}

// IsDown samples the physical key state at call time (GetAsyncKeyState high bit).
func (SystemKeys) IsDown(vk uint16) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(r)&0x8000 != 0
}

// IsToggled reads the latched state of a lock key (GetKeyState low bit).
func (SystemKeys) IsToggled(vk uint16) bool {
	r, _, _ := procGetKeyState.Call(uintptr(vk))
	return r&0x0001 != 0
}

type keybdInput struct {
	WVk         uint16
	WScan       uint16
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// input mirrors INPUT; padding covers the larger MOUSEINPUT union member.
type input struct {
	Type    uint32
	Ki      keybdInput
	padding [8]byte
}

// Sender injects Unicode characters with SendInput.
type Sender struct{}

// NewSender returns the platform Sender.
func NewSender() Sender {
	return Sender{}
}

// SendUnicode submits one KEYEVENTF_UNICODE key-down per code unit in a
// single SendInput call so the units cannot interleave with other input.
func (Sender) SendUnicode(units []uint16) (int, error) {
	if len(units) == 0 {
		return 0, nil
	}
	var stack [2]input
	ins := stack[:0]
	if len(units) > len(stack) {
		ins = make([]input, 0, len(units))
	}
	for _, u := range units {
		ins = append(ins, input{
			Type: inputKeyboard,
			Ki:   keybdInput{WScan: u, DwFlags: keyeventfUnicode},
		})
	}
	r, _, err := procSendInput.Call(uintptr(len(ins)), uintptr(unsafe.Pointer(&ins[0])), unsafe.Sizeof(ins[0]))
	if int(r) != len(ins) {
		if err == windows.ERROR_SUCCESS {
			err = windows.ERROR_ACCESS_DENIED
		}
		return int(r), fmt.Errorf("SendInput: %w", err)
	}
	return int(r), nil
}
