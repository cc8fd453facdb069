package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/unparser/document"
	"github.com/dhamidi/unparser/unparser"
)

var log = commonlog.GetLogger("unparse")

func newRenderCmd() *cobra.Command {
	var overwrite bool
	var outExt string
	var jobs int

	cmd := &cobra.Command{
		Use:   "render <path|glob>...",
		Short: "Render documents as Ruby source",
		Long: `Render each document (.yaml, .json or .sexp) as Ruby source.

Arguments may be doublestar globs such as 'testdata/**/*.yaml'. Documents are
rendered in parallel and printed in argument order; with more than one
document each is preceded by a "# ==> path" header.

Use -w to write the result next to each document instead, as
<path><out-ext>.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}

			results, err := renderAll(cmd.Context(), paths, jobs)
			if err != nil {
				return err
			}

			if overwrite {
				for i, path := range paths {
					target := path + outExt
					log.Infof("writing %s", target)
					if err := os.WriteFile(target, []byte(results[i]+"\n"), 0644); err != nil {
						return fmt.Errorf("write %s: %w", target, err)
					}
				}
				return nil
			}
			return printResults(cmd.OutOrStdout(), paths, results)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "write <path><out-ext> instead of printing")
	cmd.Flags().StringVar(&outExt, "out-ext", ".rb", "extension appended to the document path with -w")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of documents rendered at once")

	return cmd
}

// expandPaths resolves glob arguments. Plain paths are kept as given, so a
// missing file is reported when it is loaded.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", arg)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// renderAll renders every path with at most jobs documents in flight. The
// results are in path order.
func renderAll(ctx context.Context, paths []string, jobs int) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := renderFile(path)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderFile(path string) (string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	node, comments, err := doc.Build()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("rendering %s with %d comments", path, len(comments))
	out, err := unparser.Unparse(node, comments, unparser.WithSource(doc.SourceBytes()))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func printResults(w io.Writer, paths, results []string) error {
	for i, result := range results {
		if len(paths) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "# ==> %s\n", paths[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, result); err != nil {
			return err
		}
	}
	return nil
}
