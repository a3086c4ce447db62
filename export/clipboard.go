package export

import (
	"fmt"
	"os/exec"
	"strings"
)

// CopyToClipboard pipes text to the first available system clipboard tool.
func CopyToClipboard(text string) error {
	for _, candidate := range [][]string{
		{"pbcopy"},
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
	} {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			continue
		}
		cmd := exec.Command(candidate[0], candidate[1:]...)
		cmd.Stdin = strings.NewReader(text)
		return cmd.Run()
	}
	return fmt.Errorf("no clipboard tool found (pbcopy, wl-copy, xclip)")
}
