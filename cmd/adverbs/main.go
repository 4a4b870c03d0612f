package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/Philanthropists/adverbs/internal/logging"
	"github.com/Philanthropists/adverbs/internal/scenario"
)

var GitCommit string

func version() string {
	if GitCommit != "" && len(GitCommit) >= 3 {
		return GitCommit[:3]
	}

	return "dev"
}

func getConfig(path string) (scenario.Config, error) {
	if path == "" {
		return scenario.DefaultConfig(), nil
	}

	return scenario.Load(path)
}

func main() {
	configPath := flag.String("config", "", "json file with inputs, default and threshold")
	parallel := flag.Int("parallel", 0, "goroutines used for the parallel map, 0 means one per cpu")
	debug := flag.Bool("debug", false, "output debug logs")
	flag.Parse()

	base, err := logging.Build(*debug)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	logging.SetGlobal(base)

	logger := base.With(logging.String("version", version()))
	defer func() { _ = logger.Sync() }()

	ctx := logger.GetContext(context.Background())

	config, err := getConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to read config", logging.Error(err))
	}

	if *parallel > 0 {
		config.Parallel = *parallel
	}

	report := scenario.Run(ctx, config)
	if err := report.Write(os.Stdout); err != nil {
		logger.Fatal("failed to write report", logging.Error(err))
	}
}
