package main

import (
	"github.com/spf13/cobra"

	"github.com/mauriciobenjamin700/regexm/pkg/document"
	"github.com/mauriciobenjamin700/regexm/pkg/sanitizer"
)

type cpfResult struct {
	Input       string `json:"input"`
	Valid       bool   `json:"valid"`
	Formatted   string `json:"formatted"`
	CheckDigits string `json:"check_digits,omitempty"`
}

func (a *app) cpfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpf <value>",
		Short: "Validate and format a CPF",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := cpfResult{
				Input:     args[0],
				Valid:     document.ValidateCPF(args[0]),
				Formatted: document.FormatCPF(args[0]),
			}
			if pair, ok := document.CPFCheckDigits(args[0]); ok {
				res.CheckDigits = pair.String()
			}

			return a.out.result(res,
				field{"cpf", a.out.verdict(res.Valid)},
				field{"formatted", res.Formatted},
				field{"check digits", res.CheckDigits},
			)
		},
	}
}

type cnhResult struct {
	Input       string `json:"input"`
	Valid       bool   `json:"valid"`
	Digits      string `json:"digits"`
	CheckDigits string `json:"check_digits,omitempty"`
}

func (a *app) cnhCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cnh <value>",
		Short: "Validate a CNH (eleven digits, no punctuation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := cnhResult{
				Input:  args[0],
				Valid:  document.ValidateCNH(args[0]),
				Digits: document.FormatCNH(args[0]),
			}
			if pair, ok := document.CNHCheckDigits(args[0]); ok {
				res.CheckDigits = pair.String()
			}

			return a.out.result(res,
				field{"cnh", a.out.verdict(res.Valid)},
				field{"digits", res.Digits},
				field{"check digits", res.CheckDigits},
			)
		},
	}
}

type crvResult struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted"`
}

func (a *app) crvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crv <value>",
		Short: "Validate and normalize a CRV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := crvResult{
				Input:     args[0],
				Valid:     document.ValidateCRV(args[0]),
				Formatted: document.FormatCRV(args[0]),
			}

			return a.out.result(res,
				field{"crv", a.out.verdict(res.Valid)},
				field{"formatted", res.Formatted},
			)
		},
	}
}

type plateResult struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Kind      string `json:"kind"`
	Formatted string `json:"formatted"`
}

func (a *app) plateCmd() *cobra.Command {
	var dash bool

	cmd := &cobra.Command{
		Use:   "plate <value>",
		Short: "Validate a license plate in the old or Mercosul layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			style := document.PlateClean
			if dash {
				style = document.PlateDash
			}

			raw := sanitizer.Trim(args[0])
			res := plateResult{
				Input:     args[0],
				Valid:     document.ValidatePlate(raw),
				Kind:      document.PlateKindOf(raw).String(),
				Formatted: document.FormatPlate(raw, style),
			}

			return a.out.result(res,
				field{"plate", a.out.verdict(res.Valid)},
				field{"kind", res.Kind},
				field{"formatted", res.Formatted},
			)
		},
	}

	cmd.Flags().BoolVar(&dash, "dash", false, "insert a hyphen after the letters (ABC-1234)")
	return cmd
}
