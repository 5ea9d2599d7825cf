package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dsprep/internal/curate"
	"dsprep/internal/format"
	"dsprep/internal/logging"
	"dsprep/internal/stats"
)

var statsFlags struct {
	format        string
	top           int
	previewWidth  int
	allowedLabels []string
	dir           string
}

var statsCmd = &cobra.Command{
	Use:   "stats [file.jsonl]...",
	Short: "Report label, length and duplicate statistics for JSONL files",
	Long: `Stats validates that every row has string "justification" and "label"
fields and reports the label distribution, average lengths and the most
frequent duplicate justifications for each file. With --dir, every *.jsonl
dataset in that directory (for example a split output directory) is
reported as well. Unreadable files are reported on stderr and skipped.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 && statsFlags.dir == "" {
			return errors.New("requires at least one file or --dir")
		}
		return nil
	},
	RunE: runStats,
}

func init() {
	f := statsCmd.Flags()
	f.StringVar(&statsFlags.format, "format", "text", "Report format (text, markdown, json)")
	f.IntVar(&statsFlags.top, "top", stats.DefaultTopDuplicates, "Number of top duplicates to show (must be positive)")
	f.IntVar(&statsFlags.previewWidth, "preview-width", stats.DefaultPreviewWidth, "Max characters of a duplicate preview (must be positive)")
	f.StringSliceVar(&statsFlags.allowedLabels, "allowed-label", nil, "Allowed label value (repeatable; default: VALID, NOT VALID, UNSAFE, NEEDS MORE INFO)")
	f.StringVar(&statsFlags.dir, "dir", "", "Also report every *.jsonl dataset in this directory")
}

type renderFunc func(io.Writer, *stats.Report) error

func runStats(cmd *cobra.Command, paths []string) error {
	c := cfg.Stats
	f := cmd.Flags()
	if f.Changed("format") {
		c.Format = statsFlags.format
	}
	if f.Changed("top") {
		c.TopDuplicates = statsFlags.top
	}
	if f.Changed("preview-width") {
		c.PreviewWidth = statsFlags.previewWidth
	}
	if f.Changed("allowed-label") {
		c.AllowedLabels = statsFlags.allowedLabels
	}
	if c.TopDuplicates <= 0 {
		return fmt.Errorf("top duplicates must be positive, got %d", c.TopDuplicates)
	}
	if c.PreviewWidth <= 0 {
		return fmt.Errorf("preview width must be positive, got %d", c.PreviewWidth)
	}

	render, err := reportRenderer(c.Format)
	if err != nil {
		return err
	}

	log := logging.New("stats")
	opts := c.Options()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			fmt.Fprintf(errOut, "%s: not found or not a file\n", p)
			continue
		}
		records, err := curate.ReadFile(p)
		if err != nil {
			log.Debug("file skipped", "path", p, "error", err)
			fmt.Fprintln(errOut, err)
			continue
		}
		if err := render(out, stats.Summarize(filepath.Base(p), records, opts)); err != nil {
			return fmt.Errorf("render %s: %w", p, err)
		}
	}

	if statsFlags.dir != "" {
		info, err := os.Stat(statsFlags.dir)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(errOut, "%s: not found or not a directory\n", statsFlags.dir)
			return nil
		}
		return reportStore(cmd.Context(), &curate.FileStore{Dir: statsFlags.dir}, opts, render, out, errOut)
	}
	return nil
}

// reportStore reports every dataset in store, in List order. Datasets that
// fail to load are reported on errOut and skipped.
func reportStore(ctx context.Context, store curate.Store, opts stats.Options, render renderFunc, out, errOut io.Writer) error {
	log := logging.New("stats")
	names, err := store.List(ctx)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil
	}
	for _, name := range names {
		ds, err := store.Load(ctx, name)
		if err != nil {
			log.Debug("dataset skipped", "name", name, "error", err)
			fmt.Fprintln(errOut, err)
			continue
		}
		if err := render(out, stats.Summarize(ds.Name+curate.Ext, ds.Records, opts)); err != nil {
			return fmt.Errorf("render %s: %w", ds.Name, err)
		}
	}
	return nil
}

func reportRenderer(name string) (renderFunc, error) {
	if name == "json" {
		return stats.RenderJSON, nil
	}
	mode, err := format.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return func(w io.Writer, r *stats.Report) error {
		return stats.Render(w, r, mode)
	}, nil
}
