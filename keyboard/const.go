package keyboard

// Modifier bitmasks carried by a Snapshot.
const (
	ModCtrl       = 0x01 // either Ctrl key
	ModAlt        = 0x02 // either Alt key
	ModLeftShift  = 0x04
	ModRightShift = 0x08
	ModLeftWin    = 0x10
	ModRightWin   = 0x20
)

// Windows virtual-key codes. Letters and digits share their ASCII values.
const (
	VKBack    = 0x08
	VKTab     = 0x09
	VKReturn  = 0x0D
	VKShift   = 0x10
	VKControl = 0x11
	VKMenu    = 0x12 // Alt
	VKPause   = 0x13
	VKCapital = 0x14 // Caps Lock
	VKEscape  = 0x1B
	VKSpace   = 0x20
	VKPrior   = 0x21 // Page Up
	VKNext    = 0x22 // Page Down
	VKEnd     = 0x23
	VKHome    = 0x24
	VKLeft    = 0x25
	VKUp      = 0x26
	VKRight   = 0x27
	VKDown    = 0x28
	VKInsert  = 0x2D
	VKDelete  = 0x2E

	VK0 = 0x30
	VK1 = 0x31
	VK2 = 0x32
	VK3 = 0x33
	VK4 = 0x34
	VK5 = 0x35
	VK6 = 0x36
	VK7 = 0x37
	VK8 = 0x38
	VK9 = 0x39

	VKA = 0x41
	VKB = 0x42
	VKC = 0x43
	VKD = 0x44
	VKE = 0x45
	VKF = 0x46
	VKG = 0x47
	VKH = 0x48
	VKI = 0x49
	VKJ = 0x4A
	VKK = 0x4B
	VKL = 0x4C
	VKM = 0x4D
	VKN = 0x4E
	VKO = 0x4F
	VKP = 0x50
	VKQ = 0x51
	VKR = 0x52
	VKS = 0x53
	VKT = 0x54
	VKU = 0x55
	VKV = 0x56
	VKW = 0x57
	VKX = 0x58
	VKY = 0x59
	VKZ = 0x5A

	VKLWin = 0x5B
	VKRWin = 0x5C
	VKApps = 0x5D

	VKF1  = 0x70
	VKF2  = 0x71
	VKF3  = 0x72
	VKF4  = 0x73
	VKF5  = 0x74
	VKF6  = 0x75
	VKF7  = 0x76
	VKF8  = 0x77
	VKF9  = 0x78
	VKF10 = 0x79
	VKF11 = 0x7A
	VKF12 = 0x7B
	VKF24 = 0x87

	VKNumLock  = 0x90
	VKScroll   = 0x91
	VKLShift   = 0xA0
	VKRShift   = 0xA1
	VKLControl = 0xA2
	VKRControl = 0xA3
	VKLMenu    = 0xA4
	VKRMenu    = 0xA5

	VKOEM1      = 0xBA // ;:
	VKOEMPlus   = 0xBB // =+
	VKOEMComma  = 0xBC // ,<
	VKOEMMinus  = 0xBD // -_
	VKOEMPeriod = 0xBE // .>
	VKOEM2      = 0xBF // /?
	VKOEM3      = 0xC0 // `~
	VKOEM4      = 0xDB // [{
	VKOEM5      = 0xDC // \|
	VKOEM6      = 0xDD // ]}
	VKOEM7      = 0xDE // '"

	// VKPacket is reported for characters injected with KEYEVENTF_UNICODE.
	VKPacket = 0xE7
)
