package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ordbench/layerheur/pkg/runstore"
	"github.com/ordbench/layerheur/pkg/runstore/history"
	"github.com/ordbench/layerheur/pkg/runstore/rediscache"
)

// historyCommand exposes "layerheur history list", reading the Mongo-
// backed run log pkg/runstore/history records to, per SPEC_FULL.md's
// domain-stack section. Nothing else in the CLI requires Mongo to be
// configured; without a Mongo URI (--mongo-uri or mongo_uri in the
// config file) this subcommand returns an error.
func (c *CLI) historyCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
	}
	root.AddCommand(c.historyListCommand())
	return root
}

func (c *CLI) historyListCommand() *cobra.Command {
	var (
		mongoURI string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recently completed runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mongoURI == "" {
				mongoURI = c.Config.MongoURI
			}
			if mongoURI == "" {
				return fmt.Errorf("history list requires --mongo-uri (or mongo_uri in the config file)")
			}
			return c.runHistoryList(cmd.Context(), mongoURI, limit)
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI the run history was recorded to")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	return cmd
}

func (c *CLI) runHistoryList(ctx context.Context, mongoURI string, limit int) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	spinner := newSpinnerWithContext(ctx, "connecting to "+mongoURI)
	spinner.Start()
	rec, err := history.Connect(ctx, mongoURI, "layerheur")
	if err != nil {
		spinner.StopWithError(err.Error())
		return fmt.Errorf("connect: %w", err)
	}
	spinner.Stop()
	defer rec.Close(ctx)

	runs, err := rec.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if len(runs) == 0 {
		printInfo("no recorded runs")
		return nil
	}

	for _, r := range runs {
		printKeyValue(r.ID[:min8(len(r.ID))], fmt.Sprintf("%s  heuristic=%s  best_iteration=%d  elapsed=%s",
			r.CompletedAt.Format(time.RFC3339), r.Heuristic, r.BestIteration, r.Elapsed))
	}
	return nil
}

func min8(n int) int {
	if n < 8 {
		return n
	}
	return 8
}

// recordHistory connects to uri and records run, used by the run
// command when --mongo-uri is set.
func recordHistory(ctx context.Context, uri string, run runstore.Run) error {
	rec, err := history.Connect(ctx, uri, "layerheur")
	if err != nil {
		return fmt.Errorf("history connect: %w", err)
	}
	defer rec.Close(ctx)
	return rec.Record(ctx, run)
}

// recordRedis writes run under key to the Redis instance at addr, used
// by the run command when --redis-addr is set.
func recordRedis(addr, key string, run runstore.Run) error {
	store := rediscache.New(rediscache.Options{Addr: addr})
	defer store.Close()
	return store.Put(key, run)
}
