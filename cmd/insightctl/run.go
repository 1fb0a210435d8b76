package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	appinsights "github.com/bryanwahyu/insight-dashboard/internal/application/insights"
	"github.com/bryanwahyu/insight-dashboard/internal/config"
	"github.com/bryanwahyu/insight-dashboard/internal/infra/api"
	"github.com/bryanwahyu/insight-dashboard/internal/middleware"
)

const usage = `usage: insightctl [-config path] [-stats] <command> [flags]

commands:
  analyze -text "..." | -url https://...
  list [-search term]
  get <id>
  health
`

var errUsage = errors.New("invalid usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("insightctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }

	// path config.yaml
	defaultPath := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	configPath := global.String("config", defaultPath, "path to config file")
	stats := global.Bool("stats", false, "print request metrics after the command")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config load error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}

	var logger *log.Logger
	if !cfg.Log.Quiet {
		logger = log.New(stderr, "insightctl ", log.LstdFlags)
	}

	metrics := middleware.NewMetrics()
	hc := &http.Client{
		Transport: middleware.MetricsTransport(middleware.LoggingTransport(nil, logger), metrics),
	}
	svc := appinsights.NewService(api.New(cfg.API.BaseURL, api.WithHTTPClient(hc)), logger)

	if cfg.API.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.API.Timeout)
		defer cancel()
	}

	err = dispatch(ctx, svc, global.Arg(0), global.Args()[1:], stdout, stderr)

	if *stats {
		enc := json.NewEncoder(stderr)
		enc.SetIndent("", "  ")
		enc.Encode(metrics.Snapshot())
	}

	switch {
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, usage)
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, svc *appinsights.Service, cmd string, args []string, stdout, stderr io.Writer) error {
	switch cmd {
	case "analyze":
		fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
		fs.SetOutput(stderr)
		text := fs.String("text", "", "text to analyze")
		url := fs.String("url", "", "URL to fetch and analyze")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		insight, err := svc.Analyze(ctx, appinsights.AnalyzeCommand{Text: *text, URL: *url})
		if err != nil {
			return err
		}
		printInsight(stdout, *insight)
		return nil

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(stderr)
		search := fs.String("search", "", "filter by text, summary or theme")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		list, err := svc.Search(ctx, *search)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(stdout, "No insights yet. Analyze some text to get started!")
			return nil
		}
		for i, insight := range list {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			printInsight(stdout, insight)
		}
		return nil

	case "get":
		if len(args) != 1 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid insight id: %q", args[0])
		}
		insight, err := svc.Get(ctx, id)
		if err != nil {
			return err
		}
		printInsight(stdout, *insight)
		return nil

	case "health":
		h, err := svc.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s (%s)\n", h.Status, h.App)
		return nil
	}
	return errUsage
}
