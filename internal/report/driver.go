package report

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"path/filepath"

	"github.com/gdpruler/benchplot/internal/config"
	"github.com/gdpruler/benchplot/internal/dataset"
	"github.com/gdpruler/benchplot/internal/errors"
	"github.com/gdpruler/benchplot/internal/manifest"
	"github.com/gdpruler/benchplot/internal/render"
	"github.com/gdpruler/benchplot/internal/storage"
)

// Driver runs the report pipeline: load the dataset, then build and
// render each view in order. No state is carried between views; a view
// that fails is skipped and the remaining views proceed.
type Driver struct {
	cfg     *config.Config
	emitter *render.Emitter
	out     io.Writer
	logger  *log.Logger
}

// NewDriver creates a driver writing its human-readable summary to out.
// The summary carries no timestamps, so identical runs print identical
// text; diagnostics go to the standard logger.
func NewDriver(cfg *config.Config, out io.Writer) *Driver {
	return &Driver{
		cfg:     cfg,
		emitter: render.NewEmitter(),
		out:     out,
		logger:  log.Default(),
	}
}

// Run executes one full report pass. The returned error is non-nil only
// for fatal conditions: an unloadable input file or an output directory
// that cannot be created. Skipped views are not errors.
func (d *Driver) Run(ctx context.Context) error {
	fmt.Fprintf(d.out, "Loading data from %s...\n", d.cfg.InputFile)

	ds, err := dataset.Load(d.cfg.InputFile)
	if err != nil {
		return err
	}
	d.printSummary(ds)

	if err := d.cfg.EnsureOutputDir(); err != nil {
		return errors.NewLoadError(errors.CodeWriteFailed,
			fmt.Sprintf("preparing output directory %s", d.cfg.OutputDir), err)
	}

	journal, run := d.openJournal(ctx, ds)
	if journal != nil {
		defer journal.Close()
	}

	store, err := storage.New(ctx, d.cfg.Storage)
	if err != nil {
		d.logger.Printf("artifact publishing disabled: %v", err)
		store = nil
	}

	fmt.Fprintln(d.out, "Generating plots...")

	generated, skipped := 0, 0
	for _, view := range Views() {
		fig, notes, err := view.Build(ds)
		if err != nil {
			d.logger.Printf("skipping view %s: %v", view.Name, err)
			skipped++
			continue
		}
		for _, note := range notes {
			fmt.Fprintln(d.out, note)
		}

		paths, err := d.emitter.Render(fig, d.cfg.OutputDir)
		if err != nil {
			d.logger.Printf("skipping view %s: %v", view.Name, err)
			skipped++
			continue
		}
		generated++
		fmt.Fprintf(d.out, "  - %s: %d artifacts\n", view.Name, len(paths))

		for _, p := range paths {
			if journal != nil {
				if _, err := journal.RecordArtifact(ctx, run.ID, view.Name, p); err != nil {
					d.logger.Printf("manifest: %v", err)
				}
			}
			if store != nil {
				key := path.Join(d.cfg.Storage.S3.Prefix, filepath.Base(p))
				if err := store.Upload(ctx, p, key); err != nil {
					d.logger.Printf("publish %s: %v", p, err)
				}
			}
		}
	}

	if journal != nil {
		if err := journal.FinishRun(ctx, run.ID, generated, skipped); err != nil {
			d.logger.Printf("manifest: %v", err)
		}
	}

	fmt.Fprintf(d.out, "All plots saved to %s/\n", d.cfg.OutputDir)
	return nil
}

// openJournal opens the run manifest and registers the run. Manifest
// failures never abort the report; they log and disable recording.
func (d *Driver) openJournal(ctx context.Context, ds *dataset.Dataset) (*manifest.Journal, *manifest.Run) {
	if !d.cfg.Manifest.Enabled {
		return nil, nil
	}

	journal, err := manifest.Open(d.cfg.Manifest.Path)
	if err != nil {
		d.logger.Printf("run manifest disabled: %v", err)
		return nil, nil
	}

	run, err := journal.BeginRun(ctx, d.cfg.InputFile, ds.Len())
	if err != nil {
		d.logger.Printf("run manifest disabled: %v", err)
		journal.Close()
		return nil, nil
	}
	return journal, run
}

func (d *Driver) printSummary(ds *dataset.Dataset) {
	fmt.Fprintf(d.out, "Loaded %d benchmark results\n", ds.Len())
	fmt.Fprintln(d.out, "Data summary:")
	fmt.Fprintf(d.out, "  - Batch sizes: %v\n", ds.Distinct(dataset.BatchSize))
	fmt.Fprintf(d.out, "  - Entry sizes: %v\n", ds.Distinct(dataset.EntrySize))
	fmt.Fprintf(d.out, "  - Writer threads: %v\n", ds.Distinct(dataset.Consumers))
	fmt.Fprintf(d.out, "  - Encryption settings: %v\n", ds.Distinct(dataset.Encryption))
	fmt.Fprintf(d.out, "  - Compression levels: %v\n", ds.Distinct(dataset.Compression))
}
