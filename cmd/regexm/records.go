package main

import (
	"github.com/spf13/cobra"

	"github.com/mauriciobenjamin700/regexm/pkg/record"
)

var (
	driverFieldOrder = []string{record.FieldCNH, record.FieldCRV, record.FieldPlate}
	userFieldOrder   = []string{
		record.FieldName,
		record.FieldEmail,
		record.FieldPhone,
		record.FieldPassword,
		record.FieldConfirmPassword,
	}
)

func (a *app) driverCmd() *cobra.Command {
	var d record.Driver

	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Validate a driver record (CNH, CRV and plate)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.out.report(a.records.ValidateDriver(d), driverFieldOrder)
		},
	}

	cmd.Flags().StringVar(&d.CNH, "cnh", "", "driver's license number")
	cmd.Flags().StringVar(&d.CRV, "crv", "", "vehicle registration certificate")
	cmd.Flags().StringVar(&d.Plate, "plate", "", "license plate")
	return cmd
}

func (a *app) userCmd() *cobra.Command {
	var (
		u       record.User
		confirm string
	)

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Validate a user registration record",
		Long: "Validates name, email, phone and password. The confirmation is only\n" +
			"compared when --confirm-password is given, even if it is empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("confirm-password") {
				u.ConfirmPassword = &confirm
			}
			return a.out.report(a.records.ValidateUserData(u), userFieldOrder)
		},
	}

	cmd.Flags().StringVar(&u.Name, "name", "", "full name")
	cmd.Flags().StringVar(&u.Email, "email", "", "email address")
	cmd.Flags().StringVar(&u.Phone, "phone", "", "phone number with area code")
	cmd.Flags().StringVar(&u.Password, "password", "", "password")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation")
	return cmd
}
