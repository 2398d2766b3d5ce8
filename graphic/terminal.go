package graphic

import (
	"os"
	"strings"
)

// normalizeTerminal works around terminal configurations that break
// Termbox. Returns a function that restores the original configuration.
func normalizeTerminal() (func(), error) {
	prevTERMINFO := os.Getenv("TERMINFO")

	if strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		// Some combinations of TERMINFO with TERM set to a tmux value
		// will cause Termbox to fail.
		if err := os.Unsetenv("TERMINFO"); err != nil {
			return nil, err
		}
	}

	restore := func() {
		if err := os.Setenv("TERMINFO", prevTERMINFO); err != nil {
			panic(err)
		}
	}

	return restore, nil
}
