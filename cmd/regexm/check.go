package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/mauriciobenjamin700/regexm/pkg/tags"
)

const omitEmpty = "omitempty"

type checkResult struct {
	Value  string   `json:"value"`
	Tags   string   `json:"tags"`
	Valid  bool     `json:"valid"`
	Failed []string `json:"failed,omitempty"`
}

func (a *app) checkCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "check <tags> <value>",
		Short: "Check a value against struct validation tags such as \"required,cpf\"",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if list {
				return a.out.result(tags.Names(), field{"tags", strings.Join(tags.Names(), ", ")})
			}

			expr, value := args[0], args[1]
			if err := checkTagExpr(expr); err != nil {
				return err
			}

			v, err := tags.New()
			if err != nil {
				return err
			}

			res := checkResult{Value: value, Tags: expr, Valid: true}
			if err := validateVar(v, value, expr); err != nil {
				var verrs validator.ValidationErrors
				if !errors.As(err, &verrs) {
					return err
				}
				res.Valid = false
				for _, fe := range verrs {
					res.Failed = append(res.Failed, fe.Tag())
				}
			}

			return a.out.result(res,
				field{"value", a.out.verdict(res.Valid)},
				field{"failed", strings.Join(res.Failed, ", ")},
			)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list the available tags")
	return cmd
}

// checkTagExpr rejects expressions the validator cannot parse: unknown or
// empty tags, and omitempty anywhere but alone in the first position.
func checkTagExpr(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return errors.New("empty tag expression")
	}

	known := append(tags.Names(), "required")
	for i, part := range strings.Split(expr, ",") {
		if part == omitEmpty {
			if i != 0 {
				return fmt.Errorf("%s must be the first tag in %q", omitEmpty, expr)
			}
			continue
		}
		for _, alt := range strings.Split(part, "|") {
			switch {
			case alt == "":
				return fmt.Errorf("empty tag in %q", expr)
			case alt == omitEmpty:
				return fmt.Errorf("%s cannot be combined with |", omitEmpty)
			case !slices.Contains(known, alt):
				return fmt.Errorf("unknown tag %q (see check --list)", alt)
			}
		}
	}
	return nil
}

// validateVar turns a validator panic on a malformed expression into an error.
func validateVar(v *validator.Validate, value, expr string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid tag expression %q: %v", expr, r)
		}
	}()
	return v.Var(value, expr)
}
