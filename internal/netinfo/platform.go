package netinfo

import "runtime"

// Platform is the OS family the tool runs on. It is detected once in main
// and passed explicitly; nothing else in the package reads runtime.GOOS.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformWindows
	PlatformLinux
	PlatformDarwin
)

// DetectPlatform maps runtime.GOOS to a Platform.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformOther
	}
}

// Unix reports whether the platform uses the Unix tool set
// (netstat -rn, arp -n, /etc/resolv.conf).
func (p Platform) Unix() bool {
	return p == PlatformLinux || p == PlatformDarwin
}

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformLinux:
		return "Linux"
	case PlatformDarwin:
		return "Darwin"
	default:
		return "Other"
	}
}
