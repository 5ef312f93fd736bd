// Command busnet reads a transit catalog and a request batch as a single
// JSON document on stdin, and writes the answer array as JSON to stdout
// (spec.md §6). Process-level settings (log level, strict layer
// validation) come from the environment via config.Load.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arzamas-transit/busnet/config"
	"github.com/arzamas-transit/busnet/transport"
)

var knownLayers = map[string]bool{
	"bus_lines":   true,
	"bus_labels":  true,
	"stop_points": true,
	"stop_labels": true,
}

func main() {
	log := logrus.New()

	var workers int
	var layerOverride []string

	root := &cobra.Command{
		Use:   "busnet",
		Short: "Answer transit-network queries from a JSON request batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log, cmd.InOrStdin(), cmd.OutOrStdout(), workers, layerOverride)
		},
	}
	root.SilenceUsage = true
	root.Flags().IntVar(&workers, "workers", 0, "cap concurrent stat_requests handlers (a positive value overrides "+
		"BUSNET_WORKERS; 0 keeps BUSNET_WORKERS, where 0 = unbounded)")
	root.Flags().StringSliceVar(&layerOverride, "layers", nil, "override render_settings.layers "+
		"(e.g. --layers=bus_lines,stop_points)")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("busnet: fatal")
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logrus.Logger, in io.Reader, out io.Writer, workersFlag int, layerOverride []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	workers := cfg.WorkerCount
	if workersFlag > 0 {
		workers = workersFlag
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	base, stat, routing, render, err := transport.Decode(data)
	if err != nil {
		return err
	}

	if len(layerOverride) > 0 {
		render.LayerSequence = layerOverride
	}

	if cfg.StrictLayers {
		for _, layer := range render.LayerSequence {
			if !knownLayers[layer] {
				return fmt.Errorf("render_settings: unknown layer %q", layer)
			}
		}
	}

	cat := transport.NewCatalog(routing, render)
	if err := cat.LoadBase(base); err != nil {
		return fmt.Errorf("loading base requests: %w", err)
	}
	if err := cat.Synchronize(); err != nil {
		return fmt.Errorf("synchronizing catalog: %w", err)
	}

	log.WithFields(logrus.Fields{"stat_requests": len(stat), "workers": workers}).Debug("busnet: processing batch")

	answers, err := cat.ProcessBatch(ctx, stat, workers)
	if err != nil {
		return fmt.Errorf("processing requests: %w", err)
	}

	encoded, err := transport.EncodeAnswers(answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	_, err = out.Write(encoded)

	return err
}
