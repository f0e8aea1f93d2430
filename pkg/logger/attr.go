package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the name of the validated field.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Valid records a validation verdict.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}

// Line records a 1-based input line number.
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
