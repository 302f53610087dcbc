package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type batchFile struct {
	Jobs []Request `yaml:"jobs"`
}

// loadBatch reads jobs from a YAML file, relative chart paths are resolved against the file's directory
func loadBatch(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse batch %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	for i := range file.Jobs {
		if chart := file.Jobs[i].Chart; chart != "" && !filepath.IsAbs(chart) {
			file.Jobs[i].Chart = filepath.Join(dir, chart)
		}
	}

	return file.Jobs, nil
}

// runBatch evaluates requests with at most limit running at once, results keep request order.
// The first failure cancels requests that haven't started yet.
func runBatch(ctx context.Context, requests []Request, limit int) ([]Result, error) {
	results := make([]Result, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, req := range requests {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			startTime := time.Now()

			res, err := req.Run()
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}

			log.Println("Calculated", req.Chart, "in", time.Since(startTime).Truncate(time.Millisecond).String())

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
