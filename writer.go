package eolfetch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// WriteProductFiles writes one {product}-eol.json file per result under dir,
// creating the directory if absent. It returns the written paths, in input
// order. Nothing is written, and no directory is created, for an empty
// result set.
func (c *Client) WriteProductFiles(dir string, results []ProductResult) (paths []string, err error) {
	if len(results) == 0 {
		return
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "creating directory %s", dir), ErrWrite)
	}

	for _, res := range results {
		p := filepath.Join(dir, res.Product+"-eol.json")
		if err = writeJSON(p, res.Cycles); err != nil {
			return nil, err
		}

		paths = append(paths, p)
		c.log.Debugw("wrote product file", "product", res.Product, "path", p)
	}

	return
}

// WriteAggregate writes all results into a single JSON object keyed by
// product, creating parent directories if absent. Nothing is written for an
// empty result set.
func (c *Client) WriteAggregate(path string, results []ProductResult) (err error) {
	if len(results) == 0 {
		return
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Mark(errors.Wrapf(err, "creating directory %s", dir), ErrWrite)
		}
	}

	combined := make(map[string][]json.RawMessage, len(results))
	for _, res := range results {
		combined[res.Product] = res.Cycles
	}

	if err = writeJSON(path, combined); err != nil {
		return
	}

	c.log.Debugw("wrote aggregate file", "products", len(results), "path", path)

	return
}

// writeJSON marshals v with two-space indentation and writes it to path.
func writeJSON(path string, v any) (err error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Mark(errors.Wrap(err, "encoding JSON"), ErrWrite)
	}

	b = append(b, '\n')

	if err = os.WriteFile(path, b, 0o644); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", path), ErrWrite)
	}

	return
}
