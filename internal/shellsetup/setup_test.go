package shellsetup

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		parent        func() string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "falls back to parent shell",
			goos:          "linux",
			parent:        func() string { return "/usr/bin/bash" },
			expectedShell: "bash",
		},
		{
			name:          "windows parent powershell",
			goos:          "windows",
			parent:        func() string { return `C:\Program Files\PowerShell\powershell.exe` },
			expectedShell: "pwsh",
		},
		{
			name:          "windows parent pwsh 7 under Program Files",
			goos:          "windows",
			parent:        func() string { return `C:\Program Files\PowerShell\7\pwsh.exe` },
			expectedShell: "pwsh",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
		{
			name:          "unix fallback",
			goos:          "darwin",
			expectedShell: "bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				if key == "SHELL" {
					return tt.envShell
				}
				return ""
			}
			got := detectShellInternal(tt.goos, env, tt.parent)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "aj() {"},
		{"/usr/bin/zsh", "aj() {"},
		{"fish", "function aj\n"},
		{"powershell.exe", "function aj {"},
	}
	for _, tt := range tests {
		got, err := Snippet(tt.shell, "/opt/bin/aerojump")
		if err != nil {
			t.Fatalf("Snippet(%q): %v", tt.shell, err)
		}
		if !strings.HasPrefix(got, tt.want) {
			t.Fatalf("Snippet(%q) starts with %q", tt.shell, got[:20])
		}
		if strings.Contains(got, binPlaceholder) || !strings.Contains(got, `"/opt/bin/aerojump"`) {
			t.Fatalf("Snippet(%q) did not substitute the binary:\n%s", tt.shell, got)
		}
	}
}

func TestSnippetUnsupported(t *testing.T) {
	if _, err := Snippet("tcsh", "aerojump"); !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("expected ErrUnsupportedShell, got %v", err)
	}
}

func TestPrintSetupUsesOverride(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		DetectParent: func() string { return "bash" },
		Executable:   func() (string, error) { return "/usr/local/bin/aerojump", nil },
	}
	if err := PrintSetup(&buf, "fish", cfg); err != nil {
		t.Fatalf("PrintSetup: %v", err)
	}
	if !strings.Contains(buf.String(), `command "/usr/local/bin/aerojump" $argv`) {
		t.Fatalf("unexpected snippet:\n%s", buf.String())
	}
}

func TestImageNameKeepsSpacesInPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\Program Files\PowerShell\7\pwsh.exe`, "pwsh"},
		{`C:\Program Files\Git\bin\bash.exe`, "bash"},
		{`"C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe"`, "powershell"},
		{"/usr/local/bin/fish", "fish"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := imageName(tt.in); got != tt.want {
			t.Errorf("imageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	snippet, err := Snippet(canonicalShellName(imageName(`C:\Program Files\PowerShell\7\pwsh.exe`)), "aerojump")
	if err != nil {
		t.Fatalf("Snippet for a pwsh image path: %v", err)
	}
	if !strings.HasPrefix(snippet, "function aj {") {
		t.Fatalf("expected the pwsh snippet, got:\n%s", snippet)
	}
}

func TestExtractExecutable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`/bin/bash -l`, "/bin/bash"},
		{`"C:\Program Files\pwsh.exe" -NoLogo`, `C:\Program Files\pwsh.exe`},
		{`'/usr/bin/fish'`, "/usr/bin/fish"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractExecutable(tt.in); got != tt.want {
			t.Errorf("extractExecutable(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
