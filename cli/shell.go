package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive {
				return errors.New("already in the shell")
			}
			return a.runShell(cmd)
		},
	}
}

// runShell reads commands until exit, quit or end of input. A failed command
// prints its error and the loop carries on with the same session.
func (a *app) runShell(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.interactive = true
	defer func() { a.interactive = false }()

	fmt.Fprintln(out, titleStyle.Render("Inventory Management System"))
	fmt.Fprintln(out, dimStyle.Render(`Type "help" for the list of commands.`))

	for {
		fmt.Fprint(out, "\ninventory> ")
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return nil
		}
		if a.execLine(cmd, strings.TrimSpace(line)) || err != nil {
			return nil
		}
	}
}

// execLine runs one shell line and reports whether the shell should stop.
func (a *app) execLine(cmd *cobra.Command, line string) bool {
	out := cmd.OutOrStdout()
	if line == "" {
		return false
	}
	words, err := splitArgs(line)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return false
	}

	words[0] = strings.ToLower(words[0])
	switch words[0] {
	case "exit", "quit":
		fmt.Fprintln(out, "Goodbye!")
		return true
	case "help", "menu":
		printMenu(out, newRootCmd(a))
		return false
	}

	// a fresh tree per line so flag values never carry over
	root := newRootCmd(a)
	if !isCommand(root, words[0]) {
		fmt.Fprintln(out, "Invalid option! Please try again.")
		return false
	}
	root.SetArgs(words)
	root.SetOut(out)
	root.SetErr(cmd.ErrOrStderr())
	root.SetIn(cmd.InOrStdin())
	if err := root.ExecuteContext(cmd.Context()); err != nil {
		fmt.Fprintln(out, "Error:", err)
	}
	return false
}

func isCommand(root *cobra.Command, name string) bool {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func printMenu(w io.Writer, root *cobra.Command) {
	fmt.Fprintln(w, titleStyle.Render("Commands:"))
	for _, c := range root.Commands() {
		if c.Name() == "shell" || c.Hidden {
			continue
		}
		fmt.Fprintf(w, "  %-18s %s\n", c.Name(), c.Short)
	}
	fmt.Fprintf(w, "  %-18s %s\n", "exit", "Exit the shell")
	fmt.Fprintln(w, dimStyle.Render(`Commands typed without flags ask for their fields. Run "<command> --help" for flags.`))
}

// splitArgs splits a shell line into words. Single or double quotes group
// words containing spaces; there are no escapes.
func splitArgs(line string) ([]string, error) {
	var (
		words  []string
		cur    strings.Builder
		quote  rune
		inWord bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
