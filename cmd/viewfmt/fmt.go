package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/grindlemire/viewfmt/internal/config"
	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/internal/log"
	"github.com/grindlemire/viewfmt/internal/watch"
	"github.com/grindlemire/viewfmt/pkg/formatter"
)

// stdinName names standard input in messages and parse errors.
const stdinName = "<stdin>"

type fmtOptions struct {
	check  bool
	stdout bool
	stdin  bool
	watch  bool
	quiet  bool
}

func newFmtCmd() *cobra.Command {
	var opts fmtOptions

	cmd := &cobra.Command{
		Use:   "fmt [path...]",
		Short: "Format .view files",
		Long: `Format .view files in place.

Directories are walked recursively and "./..." is accepted. With no paths
the current directory is formatted, unless standard input is piped, in
which case it is formatted to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.check, "check", false, "list files that are not formatted and exit 1 without writing")
	f.BoolVar(&opts.stdout, "stdout", false, "print formatted output instead of writing files")
	f.BoolVar(&opts.stdin, "stdin", false, "format standard input to standard output")
	f.BoolVar(&opts.watch, "watch", false, "keep running and re-format files when they change")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "only report problems")

	d := formatter.DefaultSettings()
	f.Int(config.FlagName(config.KeyMaxWidth), d.MaxWidth, "maximum line width")
	f.Int(config.FlagName(config.KeyTabSpaces), d.TabSpaces, "columns per indentation level")
	f.String(config.FlagName(config.KeyIndentationStyle), string(d.IndentationStyle), "indentation characters: spaces or tabs")
	f.String(config.FlagName(config.KeyNewlineStyle), string(d.NewlineStyle), "line endings: auto, unix, windows or native")
	f.String(config.FlagName(config.KeyAttrValueBraceStyle), string(d.AttrValueBraceStyle), "attribute value braces: always, always_unless_lit, when_required or preserve")
	f.String(config.FlagName(config.KeyClosingTagStyle), string(d.ClosingTagStyle), "childless elements: preserve, self_closing or non_self_closing")

	cmd.MarkFlagsMutuallyExclusive("check", "stdout", "watch")
	cmd.MarkFlagsMutuallyExclusive("stdin", "watch")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, opts fmtOptions) error {
	logger := log.Named("fmt")

	configFile, _ := cmd.Flags().GetString("config")
	res, err := config.Load(config.Options{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	if res.File != "" {
		logger.Infow("using configuration", "file", res.File)
	}
	fmtr := formatter.New(res.Settings)

	if opts.stdin || (len(args) == 0 && stdinPiped(cmd.InOrStdin())) {
		if len(args) > 0 {
			return errors.WithHint(errors.New("--stdin does not take paths"), "pipe the source in or drop --stdin")
		}
		return formatStdin(cmd, fmtr, opts)
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectViewFiles(args)
	if err != nil {
		return err
	}
	logger.Debugw("collected files", "count", len(files))

	start := time.Now()
	results := formatFiles(cmd.Context(), fmtr, files)
	log.Infof("processed %d file(s) in %s", len(files), time.Since(start).Round(time.Millisecond))

	r := reporter{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), quiet: opts.quiet}
	var runErr error
	switch {
	case opts.check:
		runErr = r.check(results)
	case opts.stdout:
		runErr = r.stdout(results)
	default:
		runErr = r.write(results)
	}

	if !opts.watch {
		return runErr
	}
	if runErr != nil {
		logger.Warnw("initial pass failed; watching for fixes", "error", runErr)
	}
	return watchFiles(cmd.Context(), fmtr, args, &r)
}

// stdinPiped reports whether in is a non-terminal file such as a pipe.
func stdinPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return !term.IsTerminal(int(f.Fd()))
}

func formatStdin(cmd *cobra.Command, fmtr *formatter.Formatter, opts fmtOptions) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errors.Wrap(err, "reading standard input")
	}

	result, err := fmtr.FormatWithResult(stdinName, string(src))
	if err != nil {
		return err
	}

	if opts.check {
		if result.Changed {
			return errors.Wrapf(errors.ErrNotFormatted, "%s", stdinName)
		}
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), result.Content)
	return errors.Wrap(err, "writing standard output")
}

// fileResult is the outcome of formatting one file.
type fileResult struct {
	path    string
	content string
	changed bool
	err     error
}

// formatFiles formats files concurrently. Results keep the order of files.
func formatFiles(ctx context.Context, fmtr *formatter.Formatter, files []string) []fileResult {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = fileResult{path: path, err: err}
				return nil
			}
			results[i] = formatFile(fmtr, path)
			return nil
		})
	}

	// Per-file failures are carried in results.
	_ = g.Wait()
	return results
}

func formatFile(fmtr *formatter.Formatter, path string) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: errors.Wrapf(err, "reading %s", path)}
	}

	result, err := fmtr.FormatWithResult(path, string(src))
	if err != nil {
		return fileResult{path: path, err: err}
	}

	return fileResult{path: path, content: result.Content, changed: result.Changed}
}

// reporter prints results and turns them into the command's error.
type reporter struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool

	mu sync.Mutex
}

// fail prints a per-file error and returns it.
func (r *reporter) fail(res fileResult) error {
	fmt.Fprintf(r.errOut, "%s %s\n", errColor.Sprint("ERROR:"), res.err)
	printHint(r.errOut, "  ", res.err)
	return res.err
}

// summarize folds per-file errors into one. An internal formatter failure
// is kept in the chain so the exit code reflects it.
func summarize(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	for _, err := range errs {
		if errors.HasAssertionFailure(err) {
			return errors.Wrapf(err, "%d file(s) failed", len(errs))
		}
	}
	return errors.Newf("%d file(s) failed", len(errs))
}

// write stores changed content back to disk.
func (r *reporter) write(results []fileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, res := range results {
		if res.err == nil && res.changed {
			if err := os.WriteFile(res.path, []byte(res.content), 0o644); err != nil {
				res.err = errors.Wrapf(err, "writing %s", res.path)
			}
		}
		if res.err != nil {
			errs = append(errs, r.fail(res))
			continue
		}
		if res.changed && !r.quiet {
			fmt.Fprintf(r.out, "%s %s\n", okColor.Sprint("Formatted:"), res.path)
		}
	}
	return summarize(errs)
}

// stdout prints formatted content, with a path header when there are
// several files.
func (r *reporter) stdout(results []fileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, r.fail(res))
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(r.out, "// %s\n", res.path)
		}
		fmt.Fprint(r.out, res.content)
	}
	return summarize(errs)
}

// check lists unformatted files without writing them.
func (r *reporter) check(results []fileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	unformatted := 0
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, r.fail(res))
			continue
		}
		if res.changed {
			unformatted++
			fmt.Fprintf(r.errOut, "%s %s is not formatted\n", warnColor.Sprint("ERROR:"), res.path)
		}
	}

	if err := summarize(errs); err != nil {
		return err
	}
	if unformatted > 0 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrNotFormatted, "%d file(s)", unformatted),
			"run viewfmt fmt to fix them")
	}
	if !r.quiet {
		fmt.Fprintf(r.out, "%s %d file(s) formatted\n", okColor.Sprint("OK:"), len(results))
	}
	return nil
}

// watchFiles re-formats files under paths as they change until ctx is done.
func watchFiles(ctx context.Context, fmtr *formatter.Formatter, paths []string, r *reporter) error {
	logger := log.Named("fmt")

	w, err := watch.New(watchRoots(paths), watch.DefaultDebounce, func(path string) {
		onFileChange(fmtr, path, r, logger)
	})
	if err != nil {
		return err
	}

	if !r.quiet {
		fmt.Fprintf(r.out, "Watching %d path(s) for changes. Press Ctrl+C to stop.\n", len(paths))
	}
	return w.Run(ctx)
}

// onFileChange formats one changed file in place. Unchanged content is
// not written back, so the watcher does not see its own writes.
func onFileChange(fmtr *formatter.Formatter, path string, r *reporter, logger *zap.SugaredLogger) {
	res := formatFile(fmtr, path)
	if res.err != nil {
		logger.Debugw("format failed", "file", path, "error", res.err)
	}
	_ = r.write([]fileResult{res})
}
