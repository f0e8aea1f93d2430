package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mauriciobenjamin700/regexm/pkg/record"
)

// printer writes either aligned, colored text or indented JSON.
type printer struct {
	w     io.Writer
	json  bool
	good  *color.Color
	bad   *color.Color
	label *color.Color
}

type field struct {
	name  string
	value string
}

func newPrinter(w io.Writer, asJSON, noColor bool) *printer {
	p := &printer{
		w:     w,
		json:  asJSON,
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
		label: color.New(color.FgCyan),
	}

	if noColor || !isTerminal(w) {
		for _, c := range []*color.Color{p.good, p.bad, p.label} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) verdict(ok bool) string {
	if ok {
		return p.good.Sprint("valid")
	}
	return p.bad.Sprint("invalid")
}

func (p *printer) yesNo(ok bool) string {
	if ok {
		return p.good.Sprint("yes")
	}
	return p.bad.Sprint("no")
}

// result prints v as JSON, or fields as aligned text.
func (p *printer) result(v any, fields ...field) error {
	if p.json {
		return p.encode(v)
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.name))
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(p.w, "%s  %s\n", p.label.Sprintf("%-*s", width, f.name), f.value); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) list(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(p.w, "%s\n", p.label.Sprint(title))
	for _, item := range items {
		fmt.Fprintf(p.w, "  - %s\n", item)
	}
}

// report prints a record report with one line per field in order.
func (p *printer) report(r record.Report, order []string) error {
	if p.json {
		return p.encode(r)
	}

	fmt.Fprintln(p.w, p.verdict(r.Valid))

	width := 0
	for _, f := range order {
		width = max(width, len(f))
	}
	for _, f := range order {
		mark := p.good.Sprint("ok")
		if !r.Fields[f] {
			mark = p.bad.Sprint("fail")
		}
		line := fmt.Sprintf("  %s  %s", p.label.Sprintf("%-*s", width, f), mark)
		if msg, ok := r.FieldErrors[f]; ok {
			line += "  " + msg
		}
		fmt.Fprintln(p.w, line)
	}

	p.list("errors:", r.Errors)
	return nil
}
