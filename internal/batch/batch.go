// Package batch normalizes path lists with bounded concurrency.
package batch

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kilnworks/assetpath/internal/pathnorm"
)

// DefaultWorkers bounds the normalization pool when the caller does not
// choose a limit.
const DefaultWorkers = 8

// Result pairs an input path with its canonical form.
type Result struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

// Summary aggregates a processed batch.
type Summary struct {
	Total   int `json:"total"`
	Changed int `json:"changed"`
}

// ReadPaths reads one path per line from r. Blank lines and lines starting
// with '#' are skipped. Lines are not trimmed beyond the line ending;
// interior whitespace is the normalizer's concern.
func ReadPaths(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// ReadPathsFile reads a path list from a file, or from stdin when name
// is "-".
func ReadPathsFile(name string) ([]string, error) {
	if name == "-" {
		return ReadPaths(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPaths(f)
}

// Run normalizes every path with a bounded worker pool. Results keep the
// input order. Normalization itself cannot fail; the only error source is
// context cancellation.
func Run(ctx context.Context, paths []string, opts pathnorm.Options, workers int) ([]Result, Summary, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := pathnorm.Normalize(p, opts)
			results[i] = Result{
				Input:   p,
				Output:  out,
				Changed: out != p,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{Total: len(results)}
	for _, r := range results {
		if r.Changed {
			summary.Changed++
		}
	}
	return results, summary, nil
}
