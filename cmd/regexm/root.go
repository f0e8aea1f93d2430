package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mauriciobenjamin700/regexm/pkg/config"
	"github.com/mauriciobenjamin700/regexm/pkg/environment"
	"github.com/mauriciobenjamin700/regexm/pkg/logger"
	"github.com/mauriciobenjamin700/regexm/pkg/record"
)

const serviceName = "regexm"

// app holds what every subcommand needs. It is filled in by setup before any
// subcommand runs.
type app struct {
	cfg     Config
	log     *slog.Logger
	records *record.Validator
	out     *printer

	envFile  string
	lang     string
	jsonOut  bool
	noColor  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "regexm",
		Short: "Validate and format Brazilian documents, contacts and passwords",
		Long: "regexm checks CPF, CNH, CRV and license plate numbers, email addresses,\n" +
			"phone numbers and passwords, and validates whole driver and user records.\n\n" +
			"Verdicts never change the exit status; only usage and I/O errors do.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.envFile, "env-file", "", "load configuration from this .env file")
	f.StringVar(&a.lang, "lang", "", "message language (default $REGEXM_LANG or pt-BR)")
	f.BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")
	f.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL or warn)")

	cmd.AddCommand(
		a.cpfCmd(),
		a.cnhCmd(),
		a.crvCmd(),
		a.plateCmd(),
		a.emailCmd(),
		a.phoneCmd(),
		a.passwordCmd(),
		a.driverCmd(),
		a.userCmd(),
		a.batchCmd(),
		a.checkCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	if a.lang == "" {
		a.lang = a.cfg.Lang
	}
	if a.logLevel == "" {
		a.logLevel = a.cfg.LogLevel
	}

	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	env := environment.Parse(a.cfg.Env)
	a.log = logger.New(
		logger.WithEnvironment(env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(lineFromContext),
	)

	a.records, err = record.New(cmd.Context(),
		record.WithLanguage(a.lang),
		record.WithLogger(a.log),
	)
	if err != nil {
		return fmt.Errorf("init record validator: %w", err)
	}

	a.out = newPrinter(cmd.OutOrStdout(), a.jsonOut, a.noColor || a.cfg.NoColor != "")

	a.log.DebugContext(cmd.Context(), "configured",
		slog.String("command", cmd.Name()),
		logger.Lang(a.records.Language()),
		slog.Bool("json", a.jsonOut),
	)
	return nil
}
