// Package main provides pagegen, a build tool that turns a web page into a
// gzip-compressed C header for embedded web servers.
//
// Usage:
//
//	pagegen [-config path/to/config.json] index.html
//
// The header is written as page_<name>.h into the pages directory next to
// the binary's own directory (../pages), regardless of the caller's working
// directory. If -config is not specified, pagegen looks for config.json in
// the same directory as the binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oszuidwest/zwfm-pagegen/internal/config"
	"github.com/oszuidwest/zwfm-pagegen/internal/eventlog"
	"github.com/oszuidwest/zwfm-pagegen/internal/header"
	"github.com/oszuidwest/zwfm-pagegen/internal/publish"
	"github.com/oszuidwest/zwfm-pagegen/internal/util"
)

const usage = "Usage: pagegen [-config path] <filename.html>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one pagegen invocation and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("pagegen", flag.ContinueOnError)
	flags.SetOutput(stdout)
	configPath := flags.String("config", "", "Path to config file (default: config.json next to binary)")
	showVersion := flags.Bool("version", false, "Print version information and exit")
	flags.Usage = func() {
		fmt.Fprintln(stdout, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		info := versionInfo()
		slog.Info("version info", "version", info.Version, "commit", info.Commit, "build_time", info.BuildTime)
		return 0
	}

	if flags.NArg() < 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	inputPath := flags.Arg(0)
	if inputPath == "" {
		reportFailure(stdout, inputPath, header.ErrInvalidUsage)
		return 1
	}

	execDir, err := util.ExecutableDir()
	if err != nil {
		slog.Error("failed to locate pagegen binary", "error", err)
		return 1
	}

	if *configPath == "" {
		*configPath = filepath.Join(execDir, config.DefaultFileName)
	}

	cfg := config.New(*configPath)
	if err := cfg.Load(); err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		return 1
	}
	if err := cfg.CheckVersion(Version); err != nil {
		slog.Error("refusing to run", "config", *configPath, "error", err)
		return 1
	}

	var events *eventlog.Logger
	if logPath := cfg.LogPath(execDir); logPath != "" {
		events, err = eventlog.NewLogger(logPath)
		if err != nil {
			slog.Error("failed to open build log", "path", logPath, "error", err)
			return 1
		}
		defer func() {
			if err := events.Close(); err != nil {
				slog.Warn("failed to close build log", "path", logPath, "error", err)
			}
		}()
	}

	gen := header.NewGenerator(cfg.OutputDir(execDir))

	res, err := gen.Generate(inputPath)
	if err != nil {
		reportFailure(stdout, inputPath, err)
		logEvent(events, func(l *eventlog.Logger) error {
			return l.LogHeader(eventlog.HeaderFailed, inputPath, &eventlog.HeaderDetails{Error: err.Error()})
		})
		return 1
	}

	logEvent(events, func(l *eventlog.Logger) error {
		return l.LogHeader(eventlog.HeaderGenerated, inputPath, &eventlog.HeaderDetails{
			OutputPath:     res.OutputPath,
			Symbol:         res.Symbol,
			InputSize:      res.InputSize,
			CompressedSize: res.CompressedSize,
		})
	})

	fmt.Fprintf(stdout, "✅ Generated: %s\n", res.OutputPath)

	if cfg.Upload.IsConfigured() {
		if err := upload(cfg, res, inputPath, events); err != nil {
			slog.Error("failed to publish header", "path", res.OutputPath, "error", err)
			return 1
		}
	}

	return 0
}

// reportFailure prints a generation error the way users expect to see it.
func reportFailure(stdout io.Writer, inputPath string, err error) {
	switch {
	case errors.Is(err, header.ErrInvalidUsage):
		fmt.Fprintln(stdout, "Missing argument - filename!")
	case errors.Is(err, header.ErrNotFound):
		fmt.Fprintf(stdout, "File not found: %s\n", inputPath)
	default:
		slog.Error("failed to generate header", "input", inputPath, "error", err)
	}
}

// upload publishes a generated header to the configured bucket.
func upload(cfg *config.Config, res *header.Result, inputPath string, events *eventlog.Logger) error {
	pub, err := publish.New(publish.S3Config{
		Endpoint:        cfg.Upload.Endpoint,
		Bucket:          cfg.Upload.Bucket,
		AccessKeyID:     cfg.Upload.AccessKeyID,
		SecretAccessKey: cfg.Upload.SecretAccessKey,
		Prefix:          cfg.Upload.Prefix,
	})
	if err != nil {
		return err
	}

	key, err := pub.Upload(context.Background(), res.OutputPath, res.FileName)
	if err != nil {
		logEvent(events, func(l *eventlog.Logger) error {
			return l.LogUpload(eventlog.UploadFailed, inputPath, pub.Bucket(), key, err.Error())
		})
		return err
	}

	logEvent(events, func(l *eventlog.Logger) error {
		return l.LogUpload(eventlog.UploadCompleted, inputPath, pub.Bucket(), key, "")
	})
	return nil
}

// logEvent writes to the build log when one is configured.
func logEvent(events *eventlog.Logger, write func(*eventlog.Logger) error) {
	if events == nil {
		return
	}
	if err := write(events); err != nil {
		slog.Warn("failed to write build log", "path", events.Path(), "error", err)
	}
}
