package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tophetei/eolfetch"
)

// version is set at build time via -ldflags.
var version = "dev"

const defaultOutputDir = "Output"

var rootFlags struct {
	output  string
	baseURL string
	timeout float64
	oneFile bool
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "eolfetch <product>...",
	Short: "Fetch end-of-life data from endoflife.date and save it as JSON",
	Long: "eolfetch retrieves end-of-life lifecycle data for one or more products\n" +
		"from the endoflife.date API and saves it as JSON, one file per product\n" +
		"or a single aggregated file with --one-file.",
	Args:          cobra.MinimumNArgs(1),
	RunE:          runFetch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitCode carries the aggregate batch result out of RunE so that main can
// exit with it after cobra unwinds.
var exitCode int

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&rootFlags.output, "output", "o", defaultOutputDir,
		"Output directory, or aggregate file path with --one-file")
	f.Float64VarP(&rootFlags.timeout, "timeout", "t", 15, "HTTP timeout in seconds")
	f.BoolVar(&rootFlags.oneFile, "one-file", false,
		"Write all products into a single aggregated JSON file")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.baseURL, "base-url", "", "Override the API base URL")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Version = version
	rootCmd.AddCommand(listCmd)
}

func newClient(cmd *cobra.Command) (*eolfetch.Client, error) {
	opts := []eolfetch.Option{
		eolfetch.WithSink(cmd.OutOrStdout()),
		eolfetch.WithTimeout(time.Duration(rootFlags.timeout * float64(time.Second))),
		eolfetch.WithUserAgent("eolfetch/" + version),
	}

	if rootFlags.baseURL != "" {
		u, err := url.Parse(rootFlags.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", rootFlags.baseURL, err)
		}

		opts = append(opts, eolfetch.WithBaseURL(u))
	}

	if rootFlags.verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("initializing logger: %w", err)
		}

		opts = append(opts, eolfetch.WithLogger(zl.Sugar()))
	}

	return eolfetch.New(opts...)
}

func runFetch(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	opts := eolfetch.RunOptions{OutputDir: rootFlags.output, OneFile: rootFlags.oneFile}
	if rootFlags.oneFile {
		opts.AggregatePath = rootFlags.output
		if !cmd.Flags().Changed("output") {
			opts.AggregatePath = filepath.Join(defaultOutputDir, "eol.json")
		}
	}

	report, err := client.Run(cmd.Context(), args, opts)
	if err != nil {
		pterm.Error.Printfln("Write failed: %v", err)
		exitCode = eolfetch.ExitWrite

		return nil
	}

	printSummary(report)
	exitCode = report.ExitCode()

	return nil
}

func printSummary(report *eolfetch.BatchReport) {
	failed := report.Failed()
	succeeded := len(report.Outcomes) - len(failed)

	pterm.Println()

	if len(failed) == 0 {
		pterm.Success.Printfln("All %d products fetched", succeeded)
		return
	}

	pterm.Error.Printfln("%d of %d products failed:", len(failed), len(report.Outcomes))

	for _, o := range failed {
		pterm.Printfln("  ✗ %s: %v", o.Product, o.Err)
	}

	pterm.Printfln("%d succeeded, %d failed", succeeded, len(failed))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(exitCode)
}
