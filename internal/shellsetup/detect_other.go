//go:build !windows

package shellsetup

// DetectParentShellName is only implemented on Windows; elsewhere $SHELL
// is authoritative.
func DetectParentShellName() string {
	return ""
}
