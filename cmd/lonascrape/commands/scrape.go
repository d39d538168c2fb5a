package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lonab-tools/lonascrape/internal/fetcher"
	"github.com/lonab-tools/lonascrape/internal/logger"
	"github.com/lonab-tools/lonascrape/internal/output"
	"github.com/lonab-tools/lonascrape/internal/report"
	"github.com/lonab-tools/lonascrape/internal/scrape"
	"github.com/lonab-tools/lonascrape/internal/selector"
)

// errScrapeFailed signals a non-zero exit without extra cobra output;
// the report on stdout already carries the failure detail.
var errScrapeFailed = errors.New("scrape failed")

func init() {
	flags := rootCmd.Flags()

	flags.StringP("url", "u", scrape.DefaultURL, "results page URL")
	flags.Duration("timeout", fetcher.DefaultTimeout, "request timeout")
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic")
	flags.String("max-body-size", "", "max response size (e.g. 2MB, empty=default)")
	flags.String("environment", report.DefaultEnvironment, "environment tag recorded in the report")
	flags.String("save", "", "also save the report to this file")
	flags.String("save-format", "json", "saved report format: json, jsonl, yaml")

	_ = viper.BindPFlag("url", flags.Lookup("url"))
	_ = viper.BindPFlag("environment", flags.Lookup("environment"))
	_ = viper.BindPFlag("fetch_mode", flags.Lookup("fetch-mode"))
}

func runScrape(cmd *cobra.Command, _ []string) (runErr error) {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := scrape.DefaultConfig()
	cfg.URL = viper.GetString("url")
	cfg.Environment = viper.GetString("environment")
	cfg.FetchMode = viper.GetString("fetch_mode")
	if timeout, err := cmd.Flags().GetDuration("timeout"); err == nil && timeout > 0 {
		cfg.Timeout = timeout
	}

	// Environment banner on stderr, mirroring what the orchestrator
	// expects to see in the job log.
	logger.Info("starting",
		"environment", cfg.Environment,
		"go_version", runtime.Version(),
		"url", cfg.URL)

	maxBodyStr, _ := cmd.Flags().GetString("max-body-size")
	if s := strings.TrimSpace(maxBodyStr); s != "" && s != "0" {
		bytes, err := humanize.ParseBytes(s)
		if err != nil {
			return fmt.Errorf("invalid max-body-size %q: %w", s, err)
		}
		cfg.MaxBodySize = int(bytes)
	}

	// The process must always end with a valid report on stdout, even
	// if something outside the pipeline blows up.
	defer func() {
		if p := recover(); p != nil {
			logger.Error("unexpected failure", "panic", p)
			emitFallback(cfg, fmt.Sprintf("critical error: %v", p))
			runErr = errScrapeFailed
		}
	}()

	runner, err := scrape.New(cfg)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		emitFallback(cfg, fmt.Sprintf("critical error: %v", err))
		return errScrapeFailed
	}
	defer func() { _ = runner.Close() }()

	rep := runner.Run(ctx)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		saveFormat, _ := cmd.Flags().GetString("save-format")
		if err := saveReport(rep, savePath, saveFormat); err != nil {
			logger.Error("failed to save report copy", "path", savePath, "error", err)
		}
	}

	if err := rep.Encode(os.Stdout); err != nil {
		logger.Error("failed to encode report", "error", err)
		return errScrapeFailed
	}

	if !rep.Success {
		logger.Error("scrape unsuccessful", "error", errorString(rep))
		return errScrapeFailed
	}
	logger.Info("scrape successful", "items", len(rep.Items))
	return nil
}

// emitFallback prints a minimal well-formed failure report so callers
// always receive valid JSON instead of a bare stack trace.
func emitFallback(cfg scrape.Config, msg string) {
	rep := report.New(cfg.URL, selector.Primary, cfg.Environment)
	rep.SetError(msg)
	_ = rep.Encode(os.Stdout)
}

func saveReport(rep *report.Report, path, format string) error {
	f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output file
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w, err := output.NewWriter(f, output.Format(format), output.WithPretty(format == "json"))
	if err != nil {
		return err
	}
	if err := w.Write(rep); err != nil {
		return err
	}
	return w.Close()
}

func errorString(rep *report.Report) string {
	if rep.Error != nil {
		return *rep.Error
	}
	return ""
}
