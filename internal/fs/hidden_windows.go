//go:build windows

package fs

// IsHidden consults the hidden attribute, falling back to the dot-file
// convention when the attributes cannot be read.
func IsHidden(fullPath string, name string) bool {
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return name != "" && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}
