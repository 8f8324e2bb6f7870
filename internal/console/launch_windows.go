//go:build windows

package console

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
)

var shells = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
}

// LaunchedFromExplorer reports whether the process was started by
// double-clicking it rather than from a shell.
func LaunchedFromExplorer(logger *slog.Logger) bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}
	parent := strings.ToLower(parentProcessName())
	logger.Debug("Parent process", "name", parent)
	if slices.Contains(shells, parent) {
		return false
	}
	return parent == "explorer.exe"
}

// Hide hides and detaches the console window. Output written afterwards is lost.
func Hide() {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return
	}
	_, _, _ = procShowWindow.Call(hwnd, windows.SW_HIDE)
	_, _, _ = procFreeConsole.Call()
}

func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))

	names := make(map[uint32]string)
	var parentPID uint32
	self := uint32(os.Getpid())
	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		names[pe.ProcessID] = windows.UTF16ToString(pe.ExeFile[:])
		if pe.ProcessID == self {
			parentPID = pe.ParentProcessID
		}
	}
	if parentPID == 0 {
		return ""
	}
	return names[parentPID]
}
