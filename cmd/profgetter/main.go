package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gbasileGP/profgetter/internal/api"
	"github.com/gbasileGP/profgetter/internal/client"
	"github.com/gbasileGP/profgetter/internal/command"
	"github.com/gbasileGP/profgetter/internal/config"
	"github.com/gbasileGP/profgetter/internal/format"
	"github.com/gbasileGP/profgetter/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const serveCommand = "serve"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Configure the logger
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Error("Error loading config")
		return 1
	}
	logger.SetLevel(cfg.Level())

	statsClient := client.NewStatsClient(cfg, logger)
	registry := command.NewRegistry()

	if len(argv) > 0 && argv[0] == serveCommand {
		return serve(cfg, statsClient, registry, logger)
	}

	sink := format.NewWriterSink(os.Stdout, os.Stderr)
	professionService := service.NewProfessionService(statsClient, sink, format.StylesFor(cfg.Color, os.Stdout, os.Stderr), logger)
	if err := professionService.RegisterCommands(registry, cfg.Suggestions); err != nil {
		logger.WithError(err).Error("Error registering commands")
		return 1
	}

	if len(argv) == 0 {
		usage(registry)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = registry.ExecuteLine(ctx, argv)
	var missing *command.MissingArgError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, command.ErrCommandNotFound), errors.Is(err, command.ErrTooManyArgs), errors.As(err, &missing):
		fmt.Fprintln(os.Stderr, err)
		usage(registry)
		return 2
	default:
		// already reported on the sink
		return 1
	}
}

func serve(cfg *config.Config, statsClient *client.StatsClient, registry *command.Registry, logger *logrus.Logger) int {
	logger.SetFormatter(&logrus.JSONFormatter{})
	gin.SetMode(gin.ReleaseMode)

	// Command output goes to the structured log in server mode.
	professionService := service.NewProfessionService(statsClient, format.LoggerSink{Logger: logger}, format.PlainStyles(), logger)
	if err := professionService.RegisterCommands(registry, cfg.Suggestions); err != nil {
		logger.WithError(err).Error("Error registering commands")
		return 1
	}

	server := api.NewServer(registry, professionService, logger)
	logger.WithField("addr", cfg.Addr).Info("Starting profession levels service")
	if err := server.Run(cfg.Addr); err != nil {
		logger.WithError(err).Error("Error running server")
		return 1
	}
	return 0
}

func usage(registry *command.Registry) {
	fmt.Fprintln(os.Stderr, "usage: profgetter <command> [args]")
	for _, name := range registry.Names() {
		cmd, _ := registry.Get(name)
		fmt.Fprintf(os.Stderr, "  %s\n", cmd.Usage())
	}
	fmt.Fprintf(os.Stderr, "  %s\n", serveCommand)
}
