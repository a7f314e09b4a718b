// Package main provides the logtypes extraction tool.
//
// logtypes parses log files against a variable-pattern schema and
// prints the distinct log types (templates) it found, with per-type
// frequencies. It is the command-line face of the logsurgeon library.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	logsurgeon "github.com/y-scope/log-surgeon"
	"github.com/y-scope/log-surgeon/internal/aggregate"
	"github.com/y-scope/log-surgeon/internal/config"
	"github.com/y-scope/log-surgeon/schema"
)

// Version information.
const (
	version = "1.0.0-dev"
	name    = "logtypes"
)

func main() {
	versionFlag := flag.Bool("version", false, "show version information")
	schemaPath := flag.String("schema", config.GetEnvStr(schema.ConfigPathEnvVar, ""),
		"schema file path (overrides -builtin)")
	builtin := flag.String("builtin", "cassandra", "builtin schema: cassandra or hadoop")
	byCount := flag.Bool("by-count", config.GetEnvBool("LOGTYPES_BY_COUNT", false),
		"order templates by frequency instead of first appearance")
	flag.Parse()

	if *versionFlag {
		log.Printf("%s v%s\n", name, version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.GetEnvLogLevel("LOGTYPES_LOG_LEVEL", slog.LevelInfo),
	}))
	logger = logger.With(
		slog.String("service", name),
		slog.String("run_id", uuid.NewString()),
	)

	if err := run(logger, *schemaPath, *builtin, *byCount, flag.Args()); err != nil {
		logger.Error("Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, schemaPath, builtin string, byCount bool, files []string) error {
	cfg, err := loadSchema(schemaPath, builtin)
	if err != nil {
		return err
	}

	logger.Info("Compiling schema",
		slog.Int("variables", len(cfg.Variables)),
	)

	parser, err := cfg.NewParser()
	if err != nil {
		return err
	}

	counter := aggregate.NewLogTypeCounter()

	// Progress lines are throttled so huge inputs do not flood the
	// log stream.
	progress := rate.NewLimiter(rate.Every(2*time.Second), 1)

	if len(files) == 0 {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if err := consume(logger, parser, counter, progress, "stdin", string(contents)); err != nil {
			return err
		}
	}

	for _, file := range files {
		contents, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		if err := consume(logger, parser, counter, progress, file, string(contents)); err != nil {
			return err
		}
	}

	report(counter, byCount)

	logger.Info("Run complete",
		slog.Int("logs", counter.Total()),
		slog.Int("log_types", counter.Len()),
	)

	return nil
}

func loadSchema(schemaPath, builtin string) (*schema.Config, error) {
	if schemaPath != "" {
		return schema.LoadConfig(schemaPath)
	}

	switch builtin {
	case "cassandra":
		return schema.Cassandra(), nil
	case "hadoop":
		return schema.Hadoop(), nil
	}

	return nil, fmt.Errorf("unknown builtin schema %q", builtin)
}

// consume streams one input through the shared parser, folding every
// event into the counter.
func consume(logger *slog.Logger, parser *logsurgeon.ReaderParser, counter *aggregate.LogTypeCounter,
	progress *rate.Limiter, source, contents string,
) error {
	if err := parser.SetInputStream(contents); err != nil {
		return err
	}

	events := 0
	for {
		event, err := parser.NextLogEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		counter.Observe(event.LogType)
		events++

		if progress.Allow() {
			logger.Info("Parsing",
				slog.String("source", source),
				slog.Int("events", events),
			)
		}
	}

	logger.Info("Parsed input",
		slog.String("source", source),
		slog.Int("events", events),
	)

	return nil
}

func report(counter *aggregate.LogTypeCounter, byCount bool) {
	templates := counter.ByID()
	if byCount {
		templates = counter.ByCount()
	}

	for i, lt := range templates {
		fmt.Printf("%d. [%d] %s\n", i, lt.Count, lt.LogType)
	}

	fmt.Printf("%d logs, %d log types\n", counter.Total(), counter.Len())
}
