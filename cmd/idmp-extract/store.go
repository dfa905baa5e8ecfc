// Copyright Fouinot Research, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fouinot/idmp-extract/internal/store"
	"github.com/fouinot/idmp-extract/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store [flags] FILE",
	Short: "Ingest matching observations into a SQLite database",
	Long: `Store runs the same scan as extract but writes matching observations
into a local SQLite database, one row per record and parameter, instead
of a TSV table. Re-ingesting a file overwrites its rows, so a season of
station files can be loaded incrementally and queried with any SQLite
client.`,
	Args: cobra.ExactArgs(1),
	RunE: runStore,
}

func init() {
	addFilterFlags(storeCmd)
	storeCmd.Flags().String("db", "observations.db", "SQLite database file")

	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := types.StoreConfig{}
	cfg.DBPath, _ = cmd.Flags().GetString("db")
	if !cmd.Flags().Changed("db") && viper.IsSet("store.db") {
		cfg.DBPath = viper.GetString("store.db")
	}

	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	src, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	ctx := context.Background()
	sum, err := st.Ingest(ctx, src, req)
	if err != nil {
		return err
	}

	total, err := st.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d record(s) matched from %d scanned (%d malformed); %d observation(s) in %s\n",
		sum.Matched, sum.Scanned, sum.Malformed, total, cfg.DBPath)
	return nil
}
