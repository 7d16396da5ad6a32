package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompt prints label and returns the next input line, trimmed.
func (a *app) prompt(w io.Writer, label string) (string, error) {
	if a.in == nil {
		return "", errors.New("no interactive input")
	}
	fmt.Fprint(w, label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading %q: %w", strings.TrimSuffix(strings.TrimSpace(label), ":"), err)
	}
	return strings.TrimSpace(line), nil
}
