//go:build !windows

package fs

// IsHidden reports dot files as hidden. The path is unused outside Windows.
func IsHidden(_ string, name string) bool {
	return name != "" && name[0] == '.'
}
