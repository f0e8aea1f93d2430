package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mauriciobenjamin700/regexm/pkg/password"
)

func (a *app) passwordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password [value]",
		Short: "Score a password against the strength rules",
		Long: "Scores a password from 0 to 5. Without an argument the password is\n" +
			"read without echo from the terminal, or as one line from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret string
			if len(args) == 1 {
				secret = args[0]
			} else {
				s, err := readSecret(cmd)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				secret = s
			}

			res := password.Assess(secret)

			if err := a.out.result(res,
				field{"password", a.out.verdict(res.Acceptable)},
				field{"score", fmt.Sprintf("%d/%d", res.Score, password.MaxScore)},
				field{"satisfied", joinRules(res.Satisfied())},
			); err != nil {
				return err
			}
			if !a.out.json {
				a.out.list("missing:", res.Errors)
			}
			return nil
		},
	}
}

func joinRules(rules []password.Rule) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// readSecret prompts without echo on a terminal and otherwise reads the
// first line of stdin.
func readSecret(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
