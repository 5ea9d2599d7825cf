package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dsprep/internal/config"
	"dsprep/internal/curate"
	"dsprep/internal/format"
	"dsprep/internal/logging"
	"dsprep/internal/split"
)

var splitFlags struct {
	input      string
	outDir     string
	train      float64
	dev        float64
	test       float64
	seed       int64
	labelField string
	format     string
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Stratified train/dev/test split of a JSONL dataset",
	Long: `Split groups records by label, allocates each label's records to
train/dev/test by the requested ratios, and writes train.jsonl, dev.jsonl
and test.jsonl to the output directory. Ratios are normalized by their sum.
Each subset gets at least one record per label when the label has three or
more records and the subset's ratio is positive.`,
	Args: cobra.NoArgs,
	RunE: runSplit,
}

func init() {
	d := config.Default().Split
	f := splitCmd.Flags()
	f.StringVar(&splitFlags.input, "input", d.Input, "Path to input JSONL")
	f.StringVar(&splitFlags.outDir, "outdir", d.OutDir, "Output directory (created if absent)")
	f.Float64Var(&splitFlags.train, "train", d.Train, "Train ratio")
	f.Float64Var(&splitFlags.dev, "dev", d.Dev, "Dev/validation ratio")
	f.Float64Var(&splitFlags.test, "test", d.Test, "Test ratio")
	f.Int64Var(&splitFlags.seed, "seed", d.Seed, "Random seed")
	f.StringVar(&splitFlags.labelField, "label-field", d.LabelField, "Label field name")
	f.StringVar(&splitFlags.format, "format", "text", "Summary table format (text, markdown)")
}

func runSplit(cmd *cobra.Command, _ []string) error {
	c := cfg.Split
	f := cmd.Flags()
	if f.Changed("input") {
		c.Input = splitFlags.input
	}
	if f.Changed("outdir") {
		c.OutDir = splitFlags.outDir
	}
	if f.Changed("train") {
		c.Train = splitFlags.train
	}
	if f.Changed("dev") {
		c.Dev = splitFlags.dev
	}
	if f.Changed("test") {
		c.Test = splitFlags.test
	}
	if f.Changed("seed") {
		c.Seed = splitFlags.seed
	}
	if f.Changed("label-field") {
		c.LabelField = splitFlags.labelField
	}
	mode, err := format.ParseMode(splitFlags.format)
	if err != nil {
		return err
	}

	ratios, err := split.NormalizeRatios(c.Ratios())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ratios (normalized): %s\n", ratios)

	log := logging.New("split")
	records, err := curate.ReadFile(c.Input)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", split.ErrEmptyInput, c.Input)
	}
	log.Info("records loaded", "input", c.Input, "count", len(records))

	res, err := split.Stratify(records, c.LabelField, ratios, split.NewRand(c.Seed))
	if err != nil {
		return err
	}

	store, err := curate.NewFileStore(c.OutDir)
	if err != nil {
		return err
	}
	sets := res.Datasets()
	if err := saveAll(cmd.Context(), store, sets); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nWrote:")
	for _, ds := range sets {
		log.Debug("subset written", "subset", ds.Name, "path", store.Path(ds.Name), "count", len(ds.Records))
		fmt.Fprintf(out, "  %s\n", filepath.Clean(store.Path(ds.Name)))
	}

	for _, ds := range sets {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderSummary(split.Summarize(ds.Name, ds.Records, c.LabelField), mode))
	}
	return nil
}

func saveAll(ctx context.Context, store curate.Store, sets []*curate.Dataset) error {
	for _, ds := range sets {
		if err := store.Save(ctx, ds); err != nil {
			return err
		}
	}
	return nil
}

func renderSummary(s split.Summary, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Title(strings.ToUpper(s.Name))
	tb.Header("Label", "Count", "Share")
	for _, l := range s.Labels {
		tb.Row(l.Label, format.Count(l.Count), format.Percent(l.Percent))
	}
	tb.Footer("Total", format.Count(s.Total), "")
	tb.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
	)
	return tb.String()
}
