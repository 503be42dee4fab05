package eolfetch

import "context"

// RunOptions configures where a batch run writes its output.
type RunOptions struct {
	OutputDir     string // per-file mode destination directory
	AggregatePath string // aggregate file path, used when OneFile is set
	OneFile       bool
}

// Run fetches every product in order, recording one outcome per product and
// printing a per-item status line to the sink as it goes. Fetch failures are
// recorded and the batch continues; there is no short-circuit. After the loop
// the successful results are written according to opts. Write failures abort
// and are returned alongside the (complete) report.
func (c *Client) Run(ctx context.Context, products []string, opts RunOptions) (report *BatchReport, err error) {
	report = &BatchReport{}

	for _, product := range products {
		cycles, ferr := c.FetchProduct(ctx, product)
		if ferr != nil {
			kind := kindOf(ferr)
			report.add(Outcome{Product: product, Kind: kind, Err: ferr})
			c.printf("✗ %s: %v\n", product, ferr)
			c.log.Warnw("fetch failed", "product", product, "kind", kind.String(), "error", ferr)

			continue
		}

		report.add(Outcome{Product: product, Kind: KindSuccess, Cycles: cycles})
		c.printf("✓ %s: %d cycles\n", product, len(cycles))
	}

	results := report.Succeeded()
	if len(results) == 0 {
		return
	}

	if opts.OneFile {
		if err = c.WriteAggregate(opts.AggregatePath, results); err != nil {
			return
		}

		c.printf("Saved %d products to: %s\n", len(results), opts.AggregatePath)

		return
	}

	paths, err := c.WriteProductFiles(opts.OutputDir, results)
	if err != nil {
		return
	}

	for i, res := range results {
		c.printf("Saved data for '%s' to: %s\n", res.Product, paths[i])
	}

	return
}
