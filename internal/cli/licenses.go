package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/huessenbergnetz/hbnsc/internal/licenses"
)

// DefaultColumns are printed when --fields is not given.
var DefaultColumns = []string{"name", "version", "license"}

func newLicensesCmd() *cobra.Command {
	var (
		columns []string
		stock   bool
	)

	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "Print the third-party license catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make([]licenses.Field, 0, len(columns))
			for _, column := range columns {
				field, ok := licenses.FieldByName(column)
				if !ok {
					return fmt.Errorf("unknown field %q", column)
				}
				fields = append(fields, field)
			}

			catalog := licenses.NewDefaultCatalog()
			if stock {
				catalog = stockCatalog()
			}
			return PrintCatalog(cmd.OutOrStdout(), catalog, fields)
		},
	}

	cmd.Flags().StringSliceVarP(&columns, "fields", "f", DefaultColumns, "Fields to print")
	cmd.Flags().BoolVar(&stock, "stock", false, "Print the stock entries instead of the build modules")
	return cmd
}

func stockCatalog() *licenses.Catalog {
	b := licenses.NewBuilder()
	// a fresh builder is never sealed
	_ = licenses.AddSQLite(b, "")
	_ = licenses.AddNemoNotifications(b, "")
	_ = licenses.AddOpenSSL(b, "")
	return b.Seal()
}

// PrintCatalog writes the selected fields of every row as aligned columns.
func PrintCatalog(w io.Writer, catalog *licenses.Catalog, fields []licenses.Field) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = strings.ToUpper(field.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for row := 0; row < catalog.Count(); row++ {
		values := make([]string, len(fields))
		for i, field := range fields {
			value, _ := catalog.Get(row, field)
			if value == "" {
				value = "-"
			}
			values[i] = value
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	return tw.Flush()
}
