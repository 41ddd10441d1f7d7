// Command custcheck validates customer or address documents.
//
// Usage:
//
//	custcheck [-kind customer|address] [file ...]
//
// Each file may hold several YAML (or JSON) documents. With no files, or with
// "-", documents are read from standard input. Files are validated
// concurrently and reported in argument order, one log record per document.
// The exit code is 1 when any document is invalid or rejected, 2 on usage or
// configuration errors.
//
// Environment:
//
//	APP_ENV         development (text logs), staging or production (JSON logs)
//	LOG_LEVEL       debug, info, warn or error
//	LOG_FORMAT      text or json, overrides the APP_ENV default
//	CUSTCHECK_KIND  default document kind
//	CUSTCHECK_JOBS  number of files validated at once
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/custcheck/pkg/async"
	"github.com/dmitrymomot/custcheck/pkg/config"
	"github.com/dmitrymomot/custcheck/pkg/document"
	"github.com/dmitrymomot/custcheck/pkg/environment"
	"github.com/dmitrymomot/custcheck/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// Config is read from the environment.
type Config struct {
	Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel  *slog.Level             `env:"LOG_LEVEL"`
	LogFormat logger.Format           `env:"LOG_FORMAT"`
	Kind      document.Kind           `env:"CUSTCHECK_KIND" envDefault:"customer"`
	Jobs      int                     `env:"CUSTCHECK_JOBS" envDefault:"4"`
}

// sourceResult is the outcome of validating one source.
type sourceResult struct {
	name    string
	reports []document.Report
	err     error
	elapsed time.Duration
}

type checkIDKey struct{}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stderr io.Writer) int {
	cfg, err := config.Load[Config]()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("custcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", string(cfg.Kind), "document kind: customer or address")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if !document.Kind(*kind).Valid() {
		fmt.Fprintf(stderr, "%v: %q\n", document.ErrUnknownKind, *kind)
		return exitUsage
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "custcheck"),
		logger.WithOutput(stderr),
		logger.WithContextValue("check_id", checkIDKey{}),
	}
	if cfg.LogLevel != nil {
		opts = append(opts, logger.WithLevel(*cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		if cfg.LogFormat != logger.FormatJSON && cfg.LogFormat != logger.FormatText {
			fmt.Fprintf(stderr, "invalid LOG_FORMAT %q\n", cfg.LogFormat)
			return exitUsage
		}
		opts = append(opts, logger.WithFormat(cfg.LogFormat))
	}
	log := logger.New(opts...).With(logger.Kind(*kind))

	sources := fs.Args()
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	futures := async.Map(ctx, sources, cfg.Jobs, func(_ context.Context, src string) (sourceResult, error) {
		return validateSource(document.Kind(*kind), src, stdin)
	})

	code := exitOK
	for i, f := range futures {
		ctx := context.WithValue(ctx, checkIDKey{}, uuid.NewString())
		res, err := f.Await()
		if err != nil {
			log.ErrorContext(ctx, "cannot open source", logger.Source(sources[i]), logger.Error(err))
			code = exitInvalid
			continue
		}
		if !report(ctx, log, res) {
			code = exitInvalid
		}
	}
	return code
}

// validateSource validates every document of src. The error is set only
// when src cannot be opened.
func validateSource(kind document.Kind, src string, stdin io.Reader) (sourceResult, error) {
	r, name, closeFn, err := open(src, stdin)
	if err != nil {
		return sourceResult{}, err
	}
	defer closeFn()

	start := time.Now()
	reports, err := document.ValidateStream(kind, r)
	return sourceResult{name: name, reports: reports, err: err, elapsed: time.Since(start)}, nil
}

// report logs every document of res and reports whether all of them passed.
func report(ctx context.Context, log *slog.Logger, res sourceResult) bool {
	ok := res.err == nil
	for _, rep := range res.reports {
		attrs := []any{logger.Source(res.name), logger.DocumentIndex(rep.Index)}
		switch {
		case rep.Err != nil:
			ok = false
			log.ErrorContext(ctx, "document rejected", append(attrs, logger.Error(rep.Err))...)
		case !rep.Result.IsValid:
			ok = false
			log.WarnContext(ctx, "document invalid", append(attrs, logger.Violations(rep.Result.Messages))...)
		default:
			log.InfoContext(ctx, "document valid", attrs...)
		}
	}

	if res.err != nil {
		log.ErrorContext(ctx, "cannot decode source", logger.Source(res.name), logger.Error(res.err))
	}
	log.DebugContext(ctx, "source checked",
		logger.Source(res.name),
		slog.Int("documents", len(res.reports)),
		logger.Duration(res.elapsed),
	)
	return ok
}

func open(src string, stdin io.Reader) (io.Reader, string, func(), error) {
	if src == "-" {
		return stdin, "stdin", func() {}, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, src, nil, err
	}
	return f, src, func() { _ = f.Close() }, nil
}
