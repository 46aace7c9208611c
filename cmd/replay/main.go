package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/prachya/golfparty/internal/replay"
	"github.com/prachya/golfparty/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		fixture    = flag.String("fixture", "", "Path to the YAML event fixture (required)")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		publishAll = flag.Bool("publish-all", false, "Push every view live even if the fixture doesn't")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	if *fixture == "" {
		os.Stderr.WriteString("missing -fixture\n")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &replay.Config{
		BaseURL:     *baseURL,
		FixturePath: *fixture,
		Timeout:     *timeout,
		PublishAll:  *publishAll,
	}

	if err := replay.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("replay failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
