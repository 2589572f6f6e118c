package netinfo

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one external command line and returns its decoded output.
// Implementations block until the child process exits; there is no timeout,
// so an unresponsive command hangs the caller.
type Runner interface {
	Run(command string) (string, error)
}

// ShellRunner runs command lines through the OS shell (cmd on Windows,
// /bin/sh elsewhere), one child process per call. Standard output is
// captured; invalid byte sequences in it are replaced, never fatal.
type ShellRunner struct {
	platform Platform
}

func NewShellRunner(p Platform) *ShellRunner {
	return &ShellRunner{platform: p}
}

func (r *ShellRunner) Run(command string) (string, error) {
	var cmd *exec.Cmd
	if r.platform == PlatformWindows {
		cmd = exec.Command("cmd", "/c", command)
	} else {
		cmd = exec.Command("/bin/sh", "-c", command)
		cmd.Env = append(os.Environ(), "LC_ALL=C")
	}
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("%s: %v: %s", command, err, firstLine(string(ee.Stderr)))
		}
		return "", fmt.Errorf("%s: %v", command, err)
	}
	return decode(out), nil
}

// decode converts raw process output to a string, substituting the Unicode
// replacement rune for bytes that are not valid UTF-8.
func decode(out []byte) string {
	return strings.ToValidUTF8(string(out), "�")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
