//go:build windows

package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

const fileAttributeHidden = windows.FILE_ATTRIBUTE_HIDDEN

// getFileAttributes reads the attribute bits of fullPath. A relative name is
// tried when fullPath is empty or no longer exists.
func getFileAttributes(fullPath, name string) (uint32, error) {
	var lastErr error = os.ErrInvalid
	for _, target := range []string{fullPath, name} {
		if target == "" {
			continue
		}
		ptr, err := windows.UTF16PtrFromString(target)
		if err != nil {
			return 0, err
		}
		attrs, err := windows.GetFileAttributes(ptr)
		if err == nil {
			return attrs, nil
		}
		if !os.IsNotExist(err) {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}
