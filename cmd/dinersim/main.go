// Command dinersim runs batches of simulated restaurant ordering
// conversations from the terminal and prints where each session ended.
package main

import (
	"fmt"
	"os"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/hupe1980/dinersim"
	"github.com/hupe1980/dinersim/config"
	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/logging"
	"github.com/hupe1980/dinersim/menu"
	"github.com/hupe1980/dinersim/model"
	"github.com/hupe1980/dinersim/model/anthropic"
	"github.com/hupe1980/dinersim/model/openai"
	sessionstore "github.com/hupe1980/dinersim/session"
	redisstore "github.com/hupe1980/dinersim/session/redis"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "dinersim",
		Short:         "Simulate restaurant ordering conversations between synthetic agents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	cmd.AddCommand(newRunCmd(&configPath))
	cmd.AddCommand(newMenuCmd())

	return cmd
}

func newRunCmd(configPath *string) *cobra.Command {
	var (
		count       int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run simulated sessions and report where each one ended",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				cfg.Count = count
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = concurrency
			}

			logger := newLogger(cfg)
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			m, err := newModel(cfg)
			if err != nil {
				return err
			}

			sim := dinersim.New(m, func(o *dinersim.Options) {
				o.SessionStore = store
				o.Concurrency = cfg.Concurrency
				o.Logger = logger
			})

			results := sim.Run(cmd.Context(), cfg.Count)

			completed := 0
			for _, res := range results {
				switch {
				case res.Completed():
					completed++
					fmt.Printf("session %s: completed (state=%s)\n", res.SessionID, res.FinalState)
				case res.Err != nil:
					fmt.Printf("session %s: failed at %s (state=%s): %v\n",
						res.SessionID, res.FailedTrigger, res.FinalState, res.Err)
				default:
					fmt.Printf("session %s: stopped at %s (state=%s)\n",
						res.SessionID, res.FailedTrigger, res.FinalState)
				}
			}
			fmt.Printf("%d/%d sessions completed\n", completed, len(results))

			if completed < len(results) {
				return fmt.Errorf("%d sessions did not complete", len(results)-completed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of sessions to simulate")
	cmd.Flags().IntVar(&concurrency, "concurrency", 5, "maximum sessions progressing at once")

	return cmd
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the restaurant catalog",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(menu.Default().DescriptionList())
		},
	}
}

func newLogger(cfg config.Config) logging.Logger {
	level := logging.LogLevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = logging.LogLevelDebug
	case "warn":
		level = logging.LogLevelWarn
	case "error":
		level = logging.LogLevelError
	}
	return logging.NewSlogLogger(level, cfg.LogFormat)
}

func newStore(cfg config.Config) (core.SessionStore, error) {
	if cfg.Redis.Addr == "" {
		return sessionstore.NewInMemoryStore(), nil
	}
	return redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil
}

func newModel(cfg config.Config) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			o.Temperature = cfg.Temperature
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			o.Temperature = cfg.Temperature
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
}
