package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newBulkCommand(ctx *commandContext) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "bulk [arquivo]",
		Short: "Resolve many identifiers, one per line (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}

			var reader io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				reader = f
			}

			queries, err := readQueries(reader)
			if err != nil {
				return err
			}
			if len(queries) == 0 {
				return fmt.Errorf("no queries to resolve")
			}

			if concurrency <= 0 {
				concurrency = ctx.cfg.Concurrency
			}
			result := svc.BulkLookup(cmd.Context(), queries, concurrency)

			if *ctx.jsonFlag {
				return printJSON(cmd, result)
			}
			cmd.Println(renderBulkTable(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "n", 0, "Worker count (defaults to configuration)")
	return cmd
}

func readQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	return queries, scanner.Err()
}
