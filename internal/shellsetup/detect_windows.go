//go:build windows

package shellsetup

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// DetectParentShellName returns the shell name of the parent process, or ""
// when it cannot be determined.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	image, err := processImage(uint32(ppid))
	if err != nil {
		return ""
	}
	return canonicalShellName(imageName(image))
}

func processImage(pid uint32) (string, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = windows.CloseHandle(handle)
	}()

	for size := uint32(260); size <= 32768; size *= 2 {
		buf := make([]uint16, size)
		n := size
		err := windows.QueryFullProcessImageName(handle, 0, &buf[0], &n)
		if err == nil {
			return windows.UTF16ToString(buf[:n]), nil
		}
		if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
			return "", err
		}
	}
	return "", windows.ERROR_INSUFFICIENT_BUFFER
}
