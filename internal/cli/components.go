package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/icon-hub-mcp/internal/query"
)

// NewComponentsCmd creates the 'components' command group.
func NewComponentsCmd(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"comp"},
		Short:   "Browse the UI component catalog",
		Long: `Browse the UI components loaded from the components directory
(~/.icon-hub-mcp/components by default, one JSON document per component).

Commands:
  list     List components, optionally of one category
  get      Show the full metadata of a component
  search   Search components by name, description, category or tag
  example  Show one code example of a component`,
	}

	cmd.AddCommand(newComponentsListCmd(opts))
	cmd.AddCommand(newComponentsGetCmd(opts))
	cmd.AddCommand(newComponentsSearchCmd(opts))
	cmd.AddCommand(newComponentsExampleCmd(opts))

	return cmd
}

func newComponentsListCmd(opts *GlobalOptions) *cobra.Command {
	var req query.ComponentListRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List components",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			resp, err := svc.ListComponents(req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			out := cmd.OutOrStdout()
			if resp.Total == 0 {
				fmt.Fprintln(out, "No components found.")
				return nil
			}
			fmt.Fprintf(out, "Components (%d, category: %s):\n\n", resp.Total, resp.Category)
			for _, c := range resp.Components {
				fmt.Fprintf(out, "  %-20s %-12s %s\n", c.Name, c.Category, c.Description)
			}
			fmt.Fprintf(out, "\nCategories: %s\n", strings.Join(resp.Categories, ", "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Category, "category", "c", "", "Only components of this category")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func newComponentsGetCmd(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show the full metadata of a component as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			c, err := svc.GetComponent(query.ComponentRequest{Name: args[0]})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), c)
		},
	}
}

func newComponentsSearchCmd(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			resp, err := svc.SearchComponents(query.ComponentSearchRequest{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Count == 0 {
				fmt.Fprintf(out, "No components match '%s'.\n", resp.Query)
				return nil
			}
			for _, hit := range resp.Results {
				fmt.Fprintf(out, "  %-20s %-12s %s", hit.Name, hit.Category, hit.Description)
				if len(hit.Relevance) > 0 {
					fmt.Fprintf(out, " [%s]", strings.Join(hit.Relevance, ", "))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newComponentsExampleCmd(opts *GlobalOptions) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "example <name>",
		Short: "Show one code example of a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			resp, err := svc.ComponentExample(query.ComponentExampleRequest{Name: args[0], ExampleIndex: index})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Example == nil {
				fmt.Fprintln(out, resp.Message)
				return nil
			}
			ex := resp.Example
			fmt.Fprintf(out, "## %s (%d/%d)\n\n%s\n\n```blade\n%s\n```\n", ex.Title, resp.ExampleIndex+1, resp.TotalExamples, ex.Description, ex.Code)
			if ex.LivewireContext != "" {
				fmt.Fprintf(out, "\n```php\n%s\n```\n", ex.LivewireContext)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Zero-based example index")

	return cmd
}
