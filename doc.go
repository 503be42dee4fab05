// Package eolfetch retrieves end-of-life lifecycle data for software products
// from the endoflife.date API v1 and persists it as JSON, either one file per
// product or a single aggregated file.
//
// The package is deliberately simple: products are fetched one at a time, in
// the order given, with a single GET per product and no retries, caching or
// concurrency. Each fetch is classified as success, not-found, rate-limited or
// network error, and a batch run keeps going past individual failures so that
// one bad slug does not abort the rest. The resulting BatchReport carries every
// outcome in input order and knows how to collapse itself into a single
// process exit code.
//
// # Quick Start
//
// Create a client and run a batch:
//
//	client, err := eolfetch.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	report, err := client.Run(ctx, []string{"python", "ubuntu", "nodejs"},
//		eolfetch.RunOptions{OutputDir: "Output"})
//	if err != nil {
//		log.Fatal(err) // write error, the batch was aborted
//	}
//
//	os.Exit(report.ExitCode())
//
// Individual pieces are usable on their own: FetchProduct performs a single
// classified GET, WriteProductFiles and WriteAggregate persist results, and
// Products lists the catalog of known product slugs.
//
// # Configuration Options
//
// The client supports functional options:
//
//	client, err := eolfetch.New(
//		eolfetch.WithTimeout(5*time.Second),
//		eolfetch.WithBaseURL(u),
//		eolfetch.WithLogger(zl.Sugar()),
//		eolfetch.WithSink(os.Stderr),
//	)
//
// Fetched cycle records are treated as opaque JSON and written back out
// unmodified, so output is byte-identical across runs given identical
// upstream data.
package eolfetch
