package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/custcheck/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Source records the origin of a document (file path or "stdin") under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// DocumentIndex records the position of a document in a stream.
func DocumentIndex(i int) slog.Attr {
	return slog.Int("document", i)
}

// Kind records the validated entity kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// CheckID records the check identifier under the key "check_id".
// If id is nil, it returns an empty Attr.
func CheckID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("check_id", id)
}

// Violations groups validation failures, keyed by property name, under the
// key "violations". An empty list returns an empty Attr.
func Violations(vs []validator.Violation) slog.Attr {
	if len(vs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(vs))
	for _, v := range vs {
		as = append(as, slog.String(v.PropertyName, v.Message))
	}
	return slog.Attr{Key: "violations", Value: slog.GroupValue(as...)}
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
