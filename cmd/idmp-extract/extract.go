package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fouinot/idmp-extract/internal/catalog"
	"github.com/fouinot/idmp-extract/internal/filter"
	"github.com/fouinot/idmp-extract/internal/pipeline"
	"github.com/fouinot/idmp-extract/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] FILE",
	Short: "Extract parameter columns from a station data file",
	Long: `Extract scans one station data file, keeps records that pass the
month/day/hour filters, and writes the requested parameter columns as
tab-separated rows prefixed by date and time.

Each filter takes a single value (-m 3) or an ascending "lo,hi" range
(-m 3,5). Every supplied filter must pass for a record to be written;
leaving a filter unset places no condition on that slot. Use
"idmp-extract params" to list valid parameter codes.`,
	Example: `  idmp-extract extract -m 3 -p dbt,ws -o march.tsv vlx03.txt
  idmp-extract extract -t 8,17 -p dbt,ws -o work_hours.tsv vlx98QC_3.txt
  idmp-extract extract -p rh vlx14QC_12_31.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	addFilterFlags(extractCmd)
	extractCmd.Flags().StringP("output", "o", "", "output file, TSV format (default: standard output)")
	extractCmd.Flags().BoolP("no-header", "s", false, "script output: suppress the header row")

	rootCmd.AddCommand(extractCmd)
}

// addFilterFlags registers the filter and parameter flags shared by the
// extract and store commands. The hour flag is -t because -h is taken
// by help; the long form keeps the original vocabulary.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("month", "m", "", "month filter: value in 1..12, or ascending \"m1,m2\" range")
	cmd.Flags().StringP("day", "d", "", "day filter: value in 1..31, or ascending \"d1,d2\" range")
	cmd.Flags().StringP("hour", "t", "", "hour filter: value in 0..23, or ascending \"h1,h2\" range")
	cmd.Flags().StringP("params", "p", "", "comma-separated parameter codes, case-insensitive (required)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg := extractConfigFromFlags(cmd)
	req.NoHeader = cfg.NoHeader

	src, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	var dst io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		dst = f
	}

	sum, err := pipeline.Run(src, dst, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d record(s) scanned, %d matched, %d malformed\n",
		sum.Scanned, sum.Matched, sum.Malformed)
	return nil
}

// requestFromFlags validates the filter and parameter flags and builds
// the pipeline request. Every configuration error surfaces here, before
// any file is opened.
func requestFromFlags(cmd *cobra.Command) (pipeline.Request, error) {
	var req pipeline.Request

	for _, sf := range []struct {
		flag string
		slot filter.Slot
		dst  *filter.RangeFilter
	}{
		{"month", filter.Month, &req.Month},
		{"day", filter.Day, &req.Day},
		{"hour", filter.Hour, &req.Hour},
	} {
		raw, _ := cmd.Flags().GetString(sf.flag)
		f, err := filter.Parse(sf.slot, raw)
		if err != nil {
			return pipeline.Request{}, err
		}
		*sf.dst = f
	}

	rawParams, _ := cmd.Flags().GetString("params")
	if strings.TrimSpace(rawParams) == "" {
		return pipeline.Request{}, fmt.Errorf("no parameter selected: use --params (run \"idmp-extract params\" for the list)")
	}
	params, err := catalog.Resolve(strings.Split(rawParams, ","))
	if err != nil {
		return pipeline.Request{}, err
	}
	req.Params = params

	return req, nil
}

// extractConfigFromFlags resolves the output settings, letting flags
// override config file values.
func extractConfigFromFlags(cmd *cobra.Command) types.ExtractConfig {
	var cfg types.ExtractConfig

	cfg.Output, _ = cmd.Flags().GetString("output")
	if cfg.Output == "" {
		cfg.Output = viper.GetString("output")
	}

	cfg.NoHeader, _ = cmd.Flags().GetBool("no-header")
	if !cmd.Flags().Changed("no-header") && viper.IsSet("no_header") {
		cfg.NoHeader = viper.GetBool("no_header")
	}

	return cfg
}
