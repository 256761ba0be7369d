package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellfx/internal/config"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/formula"
	"github.com/KirkDiggler/rpg-spellfx/internal/orchestrators/effects"
	"github.com/KirkDiggler/rpg-spellfx/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-spellfx/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-spellfx/internal/redis"
	"github.com/KirkDiggler/rpg-spellfx/internal/repositories/spells"
	"github.com/KirkDiggler/rpg-spellfx/internal/resistance"
)

// app carries the settings shared by every command
type app struct {
	envFile string
	style   string
	output  string

	cfg        *config.Config
	translator *formula.Translator
	describer  *resistance.Descriptor
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "spellfx",
		Short: "Spell effect formatter",
		Long: `spellfx turns spell documents into readable effect descriptions.
Spells can be read from JSON or YAML files or from a Redis-backed spell library.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Path to a .env file")
	root.PersistentFlags().StringVar(&a.style, "style", "", "Formula style: sentence or compact (overrides SPELLFX_STYLE)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "Output format: text or json")

	root.AddCommand(a.renderCmd())
	root.AddCommand(a.translateCmd())
	root.AddCommand(a.describeCmd())
	root.AddCommand(a.libraryCmd())

	return root
}

// setup loads config, installs the logger and builds the formatting stack
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.style != "" {
		cfg.Style = a.style
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid --style")
		}
	}
	if err := validateOutput(a.output); err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg))

	dict, err := formula.DefaultDictionary()
	if err != nil {
		return err
	}
	a.translator, err = formula.NewTranslator(&formula.TranslatorConfig{
		Style:      cfg.TranslatorStyle(),
		Dictionary: dict,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create translator")
	}

	a.describer, err = resistance.New()
	if err != nil {
		return errors.Wrap(err, "failed to load resistance tiers")
	}

	return nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) effectsService() (effects.Service, error) {
	return effects.NewOrchestrator(&effects.Config{
		Translator: a.translator,
		Describer:  a.describer,
	})
}

// openLibrary connects to Redis and returns the spell library with a
// cleanup func that closes the client
func (a *app) openLibrary(ctx context.Context) (spells.Repository, func(), error) {
	client, err := redis.NewClient(a.cfg.RedisAddr, &redis.Options{
		DB:       a.cfg.RedisDB,
		Password: a.cfg.RedisPassword,
		UseTLS:   a.cfg.RedisTLS,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	pingCtx, cancel := context.WithTimeout(ctx, a.cfg.RedisTimeout)
	defer cancel()
	if err := redis.Ping(pingCtx, client); err != nil {
		cleanup()
		return nil, nil, err
	}

	repo, err := spells.NewRedis(&spells.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewUUID("spell"),
		Clock:       clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	slog.DebugContext(ctx, "Connected to spell library", "addr", a.cfg.RedisAddr, "db", a.cfg.RedisDB)
	return repo, cleanup, nil
}
