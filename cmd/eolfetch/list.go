package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products known to endoflife.date",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	products, err := client.Products(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range products {
		fmt.Fprintln(out, p.Name)
	}

	fmt.Fprintf(out, "\n%d products total\n", len(products))

	return nil
}
