package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// openFile opens path with the platform's default viewer.
func openFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	name, args, err := openerCommand(runtime.GOOS)
	if err != nil {
		return err
	}
	return exec.Command(name, append(args, path)...).Start()
}

// openerCommand returns the viewer command for goos.
func openerCommand(goos string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", nil, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil, nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
