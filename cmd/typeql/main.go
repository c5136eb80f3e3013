// Command typeql is a small CLI over the typeql package: parse a query (or a
// list of queries) from stdin (or an argument) and print it back out in
// canonical form, pretty or compact, or report a syntax/semantic error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/typeql/typeql"
)

var (
	verbose bool
	log     = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:   "typeql",
		Short: "Parse, validate and print TypeQL queries",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parsing steps to stderr")

	root.AddCommand(parseCmd(), fmtCmd(), parseListCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [query]",
		Short: "Parse exactly one query and print its structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			log.WithField("bytes", len(text)).Debug("parsing query")
			q, err := typeql.Parse(text)
			if err != nil {
				return err
			}
			fmt.Println(typeql.String(q, true))
			return nil
		},
	}
}

func fmtCmd() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "fmt [query]",
		Short: "Parse a query and re-print it in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			q, err := typeql.Parse(text)
			if err != nil {
				return err
			}
			fmt.Println(typeql.String(q, !compact))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print on a single line")
	return cmd
}

func parseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-list [queries]",
		Short: "Parse a semicolon-terminated sequence of queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			queries, err := typeql.ParseList(text)
			if err != nil {
				return err
			}
			log.WithField("count", len(queries)).Debug("parsed queries")
			for i, q := range queries {
				fmt.Printf("--- query %d ---\n%s\n", i+1, typeql.String(q, true))
			}
			return nil
		},
	}
}
