package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Amirmahdikahdouii/Mini-Mentor/client"
	"github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/config"
)

const defaultServiceURL = "http://localhost:8000/api"

type rootFlags struct {
	serviceURL string
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "roadmapctl",
		Short:         "Create, list, inspect and delete learning roadmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger(cmd.ErrOrStderr())
			if f.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(config.LogLevelFromEnv())
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&f.serviceURL, "service-url", getEnv("ROADMAP_API_URL", defaultServiceURL), "Base URL of the roadmap API")
	rootCmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newCreateCmd(f))
	rootCmd.AddCommand(newListCmd(f))
	rootCmd.AddCommand(newGetCmd(f))
	rootCmd.AddCommand(newDeleteCmd(f))

	return rootCmd
}

func (f *rootFlags) client() (*client.Client, error) {
	return client.New(
		client.WithBaseURL(f.serviceURL),
		client.WithLogger(log.Logger),
		client.WithDebugLogging(f.debug),
	)
}

func newCreateCmd(f *rootFlags) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new roadmap for a learning goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.client()
			if err != nil {
				return err
			}

			start := time.Now()
			rm, err := c.CreateRoadmap(cmd.Context(), query)
			if err != nil {
				return err
			}
			log.Debug().
				Int64("roadmap_id", rm.ID).
				Str("title", rm.Title).
				Dur("elapsed", time.Since(start)).
				Msg("create roadmap completed")

			return printJSON(cmd, rm.Raw)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Learning goal (required)")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newListCmd(f *rootFlags) *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved roadmaps, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.client()
			if err != nil {
				return err
			}

			var opts []client.ListOption
			if cmd.Flags().Changed("skip") {
				opts = append(opts, client.WithSkip(skip))
			}
			if cmd.Flags().Changed("limit") {
				opts = append(opts, client.WithLimit(limit))
			}

			list, err := c.ListRoadmaps(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			return printJSON(cmd, list.Raw)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of roadmaps to skip")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of roadmaps to return")
	return cmd
}

func newGetCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.client()
			if err != nil {
				return err
			}
			rm, err := c.GetRoadmap(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, rm.Raw)
		},
	}
}

func newDeleteCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.client()
			if err != nil {
				return err
			}
			if err := c.DeleteRoadmap(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Roadmap %s deleted\n", args[0])
			return nil
		},
	}
}

// printJSON re-indents a raw response body for the terminal. Bodies that are
// not JSON are printed as received.
func printJSON(cmd *cobra.Command, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
