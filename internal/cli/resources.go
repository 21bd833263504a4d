package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maxviazov/studio-backoffice/internal/handler"
	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Print every list endpoint with its table and allowed filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResources(cmd.OutOrStdout(), resource.All())
		},
	}
}

func printResources(out io.Writer, defs []resource.Definition) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tTABLE\tFILTERS")
	for _, d := range defs {
		filters := make([]string, 0, len(d.Filters))
		for _, f := range d.Filters {
			filters = append(filters, describeFilter(f))
		}
		if len(filters) == 0 {
			filters = append(filters, "-")
		}
		fmt.Fprintf(tw, "%s%s/%s\t%s\t%s\n", handler.APIV1Prefix, handler.AdminPrefix, d.Name, d.Table, strings.Join(filters, " "))
	}
	return tw.Flush()
}

func describeFilter(f listquery.AllowedFilter) string {
	switch {
	case len(f.OneOf) > 0:
		return f.Key + "=" + strings.Join(f.OneOf, "|")
	case f.Kind == listquery.KindUUID:
		return f.Key + "=<uuid>"
	default:
		return f.Key
	}
}
