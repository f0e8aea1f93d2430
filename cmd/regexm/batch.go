package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mauriciobenjamin700/regexm/pkg/logger"
	"github.com/mauriciobenjamin700/regexm/pkg/record"
)

const (
	kindUser   = "user"
	kindDriver = "driver"

	maxLineSize = 1 << 20
)

type lineKey struct{}

func withLine(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, lineKey{}, n)
}

// lineFromContext adds the batch line number to log records.
func lineFromContext(ctx context.Context) (slog.Attr, bool) {
	n, ok := ctx.Value(lineKey{}).(int)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Line(n), true
}

type inputLine struct {
	number int
	text   string
}

type batchResult struct {
	Line   int            `json:"line"`
	Report *record.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (a *app) batchCmd() *cobra.Command {
	var (
		kind      string
		workers   int
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Validate JSON-lines records from a file or stdin",
		Long: "Reads one JSON object per line and validates each as a user or driver\n" +
			"record. Results keep input order. Blank lines are skipped; lines that\n" +
			"are not valid JSON are reported with their line number.\n\n" +
			"User lines: {\"name\", \"email\", \"phone\", \"password\", \"confirm_password\"}\n" +
			"Driver lines: {\"cnh\", \"crv\", \"plate\"}",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != kindUser && kind != kindDriver {
				return fmt.Errorf("invalid --kind %q: must be %q or %q", kind, kindUser, kindDriver)
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.BatchWorkers
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := a.validateLines(cmd.Context(), lines, kind, normalize, workers)
			if err != nil {
				return err
			}

			a.logSummary(cmd.Context(), results, time.Since(start))
			return a.printBatch(results)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindUser, "record kind: user or driver")
	cmd.Flags().IntVar(&workers, "workers", 4, "records validated concurrently (default $REGEXM_BATCH_WORKERS or 4)")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "trim user fields and compose names to NFC before validating")
	return cmd
}

func readLines(r io.Reader) ([]inputLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []inputLine
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, inputLine{number: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func (a *app) validateLines(ctx context.Context, lines []inputLine, kind string, normalize bool, workers int) ([]batchResult, error) {
	results := make([]batchResult, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.validateLine(withLine(ctx, line.number), line, kind, normalize)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *app) validateLine(ctx context.Context, line inputLine, kind string, normalize bool) batchResult {
	res := batchResult{Line: line.number}

	var report record.Report
	switch kind {
	case kindDriver:
		var d record.Driver
		if err := decodeLine(line.text, &d); err != nil {
			res.Error = err.Error()
			break
		}
		report = a.records.ValidateDriver(d)
		res.Report = &report
	default:
		var u record.User
		if err := decodeLine(line.text, &u); err != nil {
			res.Error = err.Error()
			break
		}
		if normalize {
			u = u.Normalize()
		}
		report = a.records.ValidateUserData(u)
		res.Report = &report
	}

	if res.Error != "" {
		a.log.WarnContext(ctx, "skipping malformed line", slog.String("error", res.Error))
		return res
	}
	a.log.DebugContext(ctx, "record validated", logger.Valid(report.Valid))
	return res
}

var (
	errNullRecord   = errors.New("invalid JSON: expected an object, got null")
	errTrailingData = errors.New("invalid JSON: unexpected data after the object")
)

// decodeLine decodes exactly one JSON object from text. text is already
// trimmed by readLines.
func decodeLine(text string, v any) error {
	if text == "null" {
		return errNullRecord
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func (a *app) logSummary(ctx context.Context, results []batchResult, elapsed time.Duration) {
	var valid, invalid, malformed int
	for _, r := range results {
		switch {
		case r.Report == nil:
			malformed++
		case r.Report.Valid:
			valid++
		default:
			invalid++
		}
	}

	a.log.InfoContext(ctx, "batch finished",
		slog.Int("records", len(results)),
		slog.Int("valid", valid),
		slog.Int("invalid", invalid),
		slog.Int("malformed", malformed),
		logger.Duration(elapsed),
	)
}

func (a *app) printBatch(results []batchResult) error {
	if a.out.json {
		enc := json.NewEncoder(a.out.w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range results {
		prefix := a.out.label.Sprintf("line %d:", r.Line)
		if r.Report == nil {
			fmt.Fprintf(a.out.w, "%s %s %s\n", prefix, a.out.bad.Sprint("error"), r.Error)
			continue
		}
		fmt.Fprintf(a.out.w, "%s %s\n", prefix, a.out.verdict(r.Report.Valid))
		for _, e := range r.Report.Errors {
			fmt.Fprintf(a.out.w, "  - %s\n", e)
		}
	}
	return nil
}
