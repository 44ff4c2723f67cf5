package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Alwanly/firebird-track/internal/cli"
	"github.com/Alwanly/firebird-track/internal/config"
	"github.com/Alwanly/firebird-track/pkg/firebird"
	"github.com/Alwanly/firebird-track/pkg/logger"
)

var version = "dev"

// CLI is the top-level command structure for track.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Submit  SubmitCmd        `cmd:"" help:"Submit user details to the save-user-details endpoint."`
}

// SubmitCmd collects attributes from its arguments and posts them once.
type SubmitCmd struct {
	ProjectID  string        `help:"Project identifier sent in the projectId header." env:"FIREBIRD_PROJECT_ID"`
	APIURL     string        `help:"Base API URL." name:"api-url" env:"FIREBIRD_API_URL"`
	APIVersion string        `help:"API version used in the endpoint path." name:"api-version" env:"FIREBIRD_API_VERSION"`
	Timeout    time.Duration `help:"HTTP client timeout, overrides REQUEST_TIMEOUT seconds."`
	Attributes []string      `arg:"" help:"Attributes as name=value or name:type=value."`
}

func (c *SubmitCmd) Run(log *logger.CanonicalLogger, out io.Writer) error {
	cfg, err := config.LoadTrackConfig()
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if c.ProjectID != "" {
		cfg.ProjectID = c.ProjectID
	}
	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}
	if c.APIVersion != "" {
		cfg.APIVersion = c.APIVersion
	}
	if c.Timeout > 0 {
		cfg.RequestTimeout = c.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	args := make([]cli.Arg, 0, len(c.Attributes))
	for _, raw := range c.Attributes {
		a, err := cli.ParseArg(raw)
		if err != nil {
			return fmt.Errorf("submit: %w", err)
		}
		args = append(args, a)
	}

	track, err := firebird.New(cfg.ProjectID, cfg.APIURL,
		firebird.WithVersion(cfg.APIVersion),
		firebird.WithHTTPTimeout(cfg.RequestTimeout),
		firebird.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := cli.Apply(track, args); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("submitting user details",
		logger.String(logger.FieldTargetURL, track.URL()),
		logger.Int(logger.FieldAttributeCount, track.Len()),
	)

	result, err := track.Execute(ctx)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func main() {
	log, err := logger.NewLoggerFromEnv("track")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("track"),
		kong.Description("Submit user profile attributes to the firebird save-user-details endpoint."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
		kong.Bind(log),
	)
	if err := ctx.Run(); err != nil {
		log.WithError(err).Error("track command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
