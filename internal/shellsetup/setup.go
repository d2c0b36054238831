package shellsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// ErrUnsupportedShell is returned for shells without an integration snippet.
var ErrUnsupportedShell = errors.New("unsupported shell")

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable locates the aerojump binary; os.Executable when nil.
	Executable func() (string, error)
}

const binPlaceholder = "{{AEROJUMP}}"

// The snippets define an "aj" function: with a single readable file it runs
// the jump and opens $EDITOR at the printed LINE:COL, otherwise it passes
// the arguments straight through.
const posixSnippet = `aj() {
    if [ "$#" -ne 1 ] || [ ! -f "$1" ]; then
        command {{AEROJUMP}} "$@"
        return $?
    fi

    pos=$(command {{AEROJUMP}} "$1") || return $?
    [ -n "$pos" ] || return 0
    line=${pos%%:*}
    col=${pos#*:}
    editor=${EDITOR:-vi}
    case "$editor" in
        *vim|*vi) "$editor" "+call cursor($line, $col)" "$1" ;;
        *) "$editor" "+$line" "$1" ;;
    esac
}
`

const fishSnippet = `function aj
    if test (count $argv) -ne 1; or not test -f $argv[1]
        command {{AEROJUMP}} $argv
        return $status
    end

    set pos (command {{AEROJUMP}} $argv[1]); or return $status
    test -n "$pos"; or return 0
    set parts (string split ':' $pos)
    set editor vi
    set -q EDITOR; and set editor $EDITOR
    switch $editor
        case '*vim' '*vi'
            $editor "+call cursor($parts[1], $parts[2])" $argv[1]
        case '*'
            $editor "+$parts[1]" $argv[1]
    end
end
`

const pwshSnippet = `function aj {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Rest)
    if ($Rest.Count -ne 1 -or -not (Test-Path $Rest[0] -PathType Leaf)) {
        & {{AEROJUMP}} @Rest
        return
    }

    $pos = & {{AEROJUMP}} $Rest[0]
    if ([string]::IsNullOrEmpty($pos)) { return }
    $line, $col = $pos.Trim().Split(':')
    $editor = if ($env:EDITOR) { $env:EDITOR } else { 'notepad' }
    if ($editor -match 'vim?(\.exe)?$') {
        & $editor "+call cursor($line, $col)" $Rest[0]
    } else {
        & $editor "+$line" $Rest[0]
    }
}
`

// Snippet returns the integration function for shell, invoking binary.
func Snippet(shell, binary string) (string, error) {
	quoted := strconv.Quote(binary)
	var tmpl string
	switch canonicalShellName(normalizeShellName(shell)) {
	case "bash", "zsh", "sh", "ksh", "dash", "":
		tmpl = posixSnippet
	case "fish":
		tmpl = fishSnippet
	case "pwsh":
		tmpl = pwshSnippet
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
	return strings.ReplaceAll(tmpl, binPlaceholder, quoted), nil
}

// PrintSetup writes the snippet for shellOverride, or for the detected shell
// when the override is empty.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	executable := cfg.Executable
	if executable == nil {
		executable = os.Executable
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	binary, err := executable()
	if err != nil {
		binary = "aerojump"
	}

	snippet, err := Snippet(shell, binary)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, snippet)
	return err
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(imageName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(imageName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

// normalizeShellName reduces a command line such as "/bin/bash -l" to a
// shell name.
func normalizeShellName(value string) string {
	return imageName(extractExecutable(strings.TrimSpace(value)))
}

// imageName reduces an executable path to a lower-case shell name. The
// whole value is a path, so spaces in it are kept.
func imageName(value string) string {
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

// extractExecutable strips arguments from a command line, honoring a
// leading quoted path.
func extractExecutable(value string) string {
	if value == "" {
		return ""
	}
	for _, quote := range []string{`"`, `'`} {
		if rest, ok := strings.CutPrefix(value, quote); ok {
			if end, _, found := strings.Cut(rest, quote); found {
				return end
			}
			return rest
		}
	}
	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
