package main

import (
	"github.com/spf13/cobra"

	"github.com/mauriciobenjamin700/regexm/pkg/email"
	"github.com/mauriciobenjamin700/regexm/pkg/phone"
)

type emailResult struct {
	Input    string `json:"input"`
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
	Domain   string `json:"domain"`
}

func (a *app) emailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Validate an email address and split it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := emailResult{
				Input:    args[0],
				Valid:    email.Validate(args[0]),
				Username: email.ExtractUsername(args[0]),
				Domain:   email.ExtractDomain(args[0]),
			}

			return a.out.result(res,
				field{"email", a.out.verdict(res.Valid)},
				field{"username", res.Username},
				field{"domain", res.Domain},
			)
		},
	}
}

type phoneResult struct {
	Input     string        `json:"input"`
	Valid     bool          `json:"valid"`
	Formatted string        `json:"formatted"`
	Number    *phone.Number `json:"number,omitempty"`
	DDDKnown  bool          `json:"ddd_known"`
}

func (a *app) phoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>",
		Short: "Validate and format a Brazilian phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := phoneResult{
				Input:     args[0],
				Valid:     phone.Validate(args[0]),
				Formatted: phone.Format(args[0]),
				DDDKnown:  phone.HasValidDDD(args[0]),
			}
			if n, ok := phone.Normalize(args[0]); ok {
				res.Number = &n
			}

			return a.out.result(res,
				field{"phone", a.out.verdict(res.Valid)},
				field{"formatted", res.Formatted},
				field{"ddd known", a.out.yesNo(res.DDDKnown)},
			)
		},
	}
}
