package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/config"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/convert"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/deps"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/fileutil"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/history"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/library"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/logging"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/mirror"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services/ffmpeg"
)

type convertOptions struct {
	inputPath      string
	outputPath     string
	ffmpegOverride string
	dryRun         bool
}

func newConvertCommand(cctx *commandContext) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Mirror playlisted FLAC tracks as MP3 entries and convert the files",
		Long: `Reads a Rekordbox library export, creates an _MP3 mirror for every
playlist, clones each playlisted FLAC track as a 320 kbps MP3 entry, converts
the files with ffmpeg, and writes the updated library XML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			ctx := services.WithRunID(cmd.Context(), uuid.NewString())
			logger = logging.WithContext(ctx, logger)

			return runConvert(ctx, cfg, logger, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "Input library XML file to parse")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output XML file to write (default: input name with \"_new\" appended)")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Parse and transform, but do not convert files or write new XML")
	cmd.Flags().StringVar(&opts.ffmpegOverride, "ffmpeg", "", "Path to ffmpeg (default: FFMPEG_PATH or the system PATH)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runConvert(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts convertOptions, out io.Writer) error {
	input, err := config.ExpandPath(opts.inputPath)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	output := opts.outputPath
	if output == "" {
		output = fileutil.ReplaceExt(input, "_new.xml")
	} else if output, err = config.ExpandPath(output); err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// One run per library at a time; a second invocation against the same
	// export would race on the output file and double-convert.
	lock := flock.New(input + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another conversion is already running against %s", input)
	}
	defer func() { _ = lock.Unlock() }()

	doc, err := library.ParseFile(input)
	if err != nil {
		return err
	}

	root := doc.PlaylistRoot()
	logger.Info("parsed library",
		slog.String("path", input),
		slog.Int("tracks", len(doc.Collection.Tracks)),
		slog.Int("playlists", len(root.Children)))

	created := mirror.EnsureMirrors(root, logger)

	result := mirror.NewTransformer(logger).Transform(doc)
	summary := mirror.Refresh(doc)

	logger.Info("transformation complete",
		slog.Int("mirrors_created", created),
		slog.Int("tracks_mirrored", result.Created),
		slog.Int("jobs", len(result.Jobs)),
		slog.Int("skipped_missing", result.SkippedMissing),
		slog.Int("skipped_unreferenced", result.SkippedUnreferenced),
		slog.Int("collection_entries", summary.Tracks))

	printJobs(out, result.Jobs)

	if opts.dryRun {
		logger.Info("dry run: skipping conversion and library write")
		return nil
	}

	driverOpts := []convert.Option{
		convert.WithTimeout(time.Duration(cfg.FFmpeg.TimeoutSeconds) * time.Second),
	}
	if cfg.History.Enabled {
		store, err := history.Open(cfg)
		if err != nil {
			logger.Warn("conversion history unavailable", logging.Error(err))
		} else {
			defer func() { _ = store.Close() }()
			driverOpts = append(driverOpts, convert.WithRecorder(store))
		}
	}

	binary := deps.ResolveFFmpegPath(firstNonEmpty(opts.ffmpegOverride, cfg.FFmpeg.Binary))
	client := ffmpeg.NewCLI(ffmpeg.WithBinary(binary))
	outcomes := convert.NewDriver(client, logger, driverOpts...).Run(ctx, result.Jobs)

	if failed := convert.Failed(outcomes); failed > 0 {
		logger.Warn("some conversions failed; their library entries were still written",
			slog.Int("failed", failed), slog.Int("total", len(outcomes)))
	}

	logger.Info("writing new library", slog.String("path", output))
	if err := doc.WriteFile(output); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s (%d tracks, %d playlists)\n", output, summary.Tracks, summary.Playlists)
	return nil
}

func printJobs(out io.Writer, jobs []mirror.Job) {
	fmt.Fprintf(out, "Found %d FLAC file(s) to convert to MP3\n", len(jobs))
	if len(jobs) == 0 {
		return
	}

	if isTerminal(out) {
		rows := make([][]string, 0, len(jobs))
		for _, job := range jobs {
			rows = append(rows, []string{job.Source, job.Destination})
		}
		fmt.Fprintln(out, renderTable([]string{"Source", "Destination"}, rows, nil))
		return
	}
	for _, job := range jobs {
		fmt.Fprintf(out, "  %s -> %s\n", job.Source, job.Destination)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
