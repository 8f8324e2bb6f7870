//go:build windows

package hook

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Alia5/runekeys/remap"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

const (
	whKeyboardLL = 13
	hcAction     = 0
	wmQuit       = 0x0012
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

var (
	// active is the hook whose handler receives callbacks.
	active atomic.Pointer[Hook]

	// windows.NewCallback slots are never released, so the trampoline is created once.
	callbackOnce sync.Once
	callbackPtr  uintptr
)

func hookCallback() uintptr {
	callbackOnce.Do(func() {
		callbackPtr = windows.NewCallback(lowLevelKeyboardProc)
	})
	return callbackPtr
}

func lowLevelKeyboardProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	if nCode == hcAction && lParam != 0 {
		if h := active.Load(); h != nil {
			kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			if h.dispatch(wParam, kb.VkCode) == remap.Suppress {
				return 1
			}
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// Run installs the hook and pumps messages on a locked OS thread until ctx is
// cancelled. The hook is removed before Run returns.
func (h *Hook) Run(ctx context.Context) error {
	if !active.CompareAndSwap(nil, h) {
		return ErrAlreadyRunning
	}
	defer active.Store(nil)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return fmt.Errorf("get module handle: %w", err)
	}

	handle, _, err := procSetWindowsHookExW.Call(whKeyboardLL, hookCallback(), uintptr(module), 0)
	if handle == 0 {
		return fmt.Errorf("install keyboard hook: %w", err)
	}
	defer procUnhookWindowsHookEx.Call(handle)

	tid := windows.GetCurrentThreadId()
	stop := context.AfterFunc(ctx, func() {
		_, _, _ = procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
	})
	defer stop()

	h.logger.Debug("Keyboard hook installed", "thread", tid)

	var m msg
	for {
		ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case 0:
			h.logger.Debug("Keyboard hook message loop stopped")
			return nil
		case -1:
			return fmt.Errorf("keyboard hook message loop: %w", err)
		}
		_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}
