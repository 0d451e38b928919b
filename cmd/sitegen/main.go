package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/eringen/sitegen"
	"github.com/eringen/sitegen/views"
)

// version is set at build time via ldflags.
var version = "dev"

var cli struct {
	EnvFile string `help:"Load environment variables from this file when it exists." default:".env"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
	Content string `short:"c" help:"Content directory (overrides CONTENT_DIR)."`

	Build struct {
		Out   string `short:"o" help:"Output directory (overrides OUTPUT_DIR)."`
		Watch bool   `short:"w" help:"Keep running and rebuild when content changes."`
	} `cmd:"" help:"Export the static site."`

	Serve struct {
		Addr string `help:"Listen address (overrides ADDR)."`
	} `cmd:"" help:"Serve a live preview of the site."`

	Check struct{} `cmd:"" help:"Report dangling references and missing files."`

	Init struct {
		Dir string `arg:"" help:"Directory to create."`
	} `cmd:"" help:"Create a starter content tree."`

	Version struct{} `cmd:"" help:"Print the sitegen version."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("Static site content pipeline for a technical blog."),
		kong.UsageOnError(),
	)

	logger := log.New("sitegen")
	logger.SetHeader("${time_rfc3339} ${level}")
	logger.SetLevel(log.INFO)
	if cli.Verbose {
		logger.SetLevel(log.DEBUG)
	}

	if err := godotenv.Load(cli.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warnf("load %s: %v", cli.EnvFile, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, kctx.Command(), logger)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, command string, logger *log.Logger) int {
	switch command {
	case "version":
		fmt.Printf("sitegen %s\n", version)
		return 0
	case "init <dir>":
		if err := runInit(cli.Init.Dir); err != nil {
			logger.Errorf("init: %v", err)
			return 1
		}
		return 0
	}

	cfg := sitegen.ConfigFromEnv()
	if cli.Content != "" {
		cfg.ContentDir = cli.Content
	}
	if cli.Build.Out != "" {
		cfg.OutputDir = cli.Build.Out
	}
	if cli.Serve.Addr != "" {
		cfg.Addr = cli.Serve.Addr
	}
	app := sitegen.New(cfg, views.Default(), sitegen.WithLogger(logger))

	var err error
	switch command {
	case "build":
		if cli.Build.Watch {
			err = app.Watch(ctx)
		} else {
			_, err = app.Export(ctx)
		}
	case "serve":
		go func() {
			<-ctx.Done()
			_ = app.Echo.Shutdown(context.Background())
		}()
		err = app.Start()
	case "check":
		var findings []sitegen.Finding
		findings, err = app.Check(ctx)
		if err == nil && sitegen.HasErrors(findings) {
			return 1
		}
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	return exitCode(logger, err)
}

// exitCode logs err and maps it to a process exit status. Content errors are
// authoring mistakes and get their own status.
func exitCode(logger *log.Logger, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sitegen.ErrContentMissing):
		logger.Errorf("content error: %v", err)
		return 2
	case errors.Is(err, context.Canceled):
		return 130
	default:
		logger.Errorf("%v", err)
		return 1
	}
}
