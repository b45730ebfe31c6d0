package key

import (
	"fmt"
	"runtime"
	"strings"
)

// Host identifies the class of platform a label is rendered for. Only
// the meta/command modifier is rendered differently per host.
type Host uint8

const (
	// HostOther is any host that is neither macOS nor Windows.
	HostOther Host = iota
	// HostMac is a macOS-class host; the meta key renders as "Cmd".
	HostMac
	// HostWindows is a Windows-class host; the meta key renders as "Win".
	HostWindows
)

// CurrentHost returns the host class of the running process.
func CurrentHost() Host {
	return hostFromGOOS(runtime.GOOS)
}

func hostFromGOOS(goos string) Host {
	switch goos {
	case "darwin", "ios":
		return HostMac
	case "windows":
		return HostWindows
	default:
		return HostOther
	}
}

// ParseHost parses a host name as accepted on the command line.
func ParseHost(name string) (Host, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mac", "macos", "darwin":
		return HostMac, nil
	case "windows", "win":
		return HostWindows, nil
	case "other", "linux", "unix", "":
		return HostOther, nil
	default:
		return HostOther, fmt.Errorf("unknown host %q", name)
	}
}

// String returns the host name.
func (h Host) String() string {
	switch h {
	case HostMac:
		return "mac"
	case HostWindows:
		return "windows"
	default:
		return "other"
	}
}

// metaLabel returns the label of the meta/command modifier on h.
func (h Host) metaLabel() string {
	switch h {
	case HostMac:
		return "Cmd"
	case HostWindows:
		return "Win"
	default:
		return "Meta"
	}
}
