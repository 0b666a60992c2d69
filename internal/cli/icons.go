package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/icon-hub-mcp/internal/query"
	"github.com/khanglvm/icon-hub-mcp/internal/search"
)

// NewListCmd creates the 'list' command.
func NewListCmd(opts *GlobalOptions) *cobra.Command {
	var req query.ListRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List icons by library and substring",
		Long:    `List icons in catalog order, optionally restricted to one library and filtered by a case-insensitive substring of the name or a tag.`,
		Example: `  icon-hub-mcp list
  icon-hub-mcp ls --library heroicons --search arrow
  icon-hub-mcp list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			resp, err := svc.List(req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			printList(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Library, "library", "l", "", "Library id (heroicons, phosphor, all)")
	cmd.Flags().StringVarP(&req.Search, "search", "s", "", "Substring of the name or a tag")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func printList(w io.Writer, resp query.ListResponse) {
	if resp.Total == 0 {
		fmt.Fprintln(w, "No icons found.")
		return
	}

	fmt.Fprintf(w, "Icons (%d):\n", resp.Total)
	current := ""
	for _, icon := range resp.Icons {
		if icon.Library != current {
			current = icon.Library
			fmt.Fprintf(w, "\n  %s\n", current)
		}
		fmt.Fprintf(w, "    %-32s %s\n", icon.Name, strings.Join(icon.Variants, ", "))
	}
	if len(resp.Installation) > 0 {
		fmt.Fprintln(w)
		for _, lib := range sortedKeys(resp.Installation) {
			fmt.Fprintf(w, "Install %s: %s\n", lib, resp.Installation[lib])
		}
	}
}

// NewCheckCmd creates the 'check' command.
func NewCheckCmd(opts *GlobalOptions) *cobra.Command {
	var req query.CheckRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check <name>",
		Short: "Check that an icon exists",
		Example: `  icon-hub-mcp check arrow-up
  icon-hub-mcp check user --library phosphor --variant bold`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			req.Name = args[0]
			resp, err := svc.Check(req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			printCheck(cmd.OutOrStdout(), req.Name, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Library, "library", "l", "", "Library id")
	cmd.Flags().StringVarP(&req.Variant, "variant", "v", "", "Variant to verify")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func printCheck(w io.Writer, name string, resp query.CheckResponse) {
	switch {
	case !resp.Exists:
		fmt.Fprintf(w, "✗ %s\n", resp.Message)
	case resp.Message != "":
		fmt.Fprintf(w, "⚠ %s\n", resp.Message)
	default:
		fmt.Fprintf(w, "✓ %s (%s): %s\n", name, resp.Library, strings.Join(resp.Variants, ", "))
	}
	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(w, "\nDid you mean:")
		printSuggestions(w, resp.Suggestions)
	}
	if resp.Installation != nil {
		fmt.Fprintf(w, "\nInstall: %s\n", resp.Installation.Command)
	}
}

// NewSimilarCmd creates the 'similar' command.
func NewSimilarCmd(opts *GlobalOptions) *cobra.Command {
	var req query.SimilarRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "similar <name>",
		Short: "Suggest icons with similar names",
		Example: `  icon-hub-mcp similar arow
  icon-hub-mcp similar trash-can --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			req.Name = args[0]
			resp, err := svc.FindSimilar(req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Suggestions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No icons similar to '%s'.\n", resp.Query)
				return nil
			}
			printSuggestions(cmd.OutOrStdout(), resp.Suggestions)
			return nil
		},
	}

	cmd.Flags().IntVarP(&req.Limit, "limit", "n", search.DefaultSuggestionLimit, "Maximum number of suggestions")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func printSuggestions(w io.Writer, suggestions []search.Suggestion) {
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %-32s %-10s %.2f\n", s.Name, s.Library, s.Score)
	}
}

// NewExampleCmd creates the 'example' command.
func NewExampleCmd(opts *GlobalOptions) *cobra.Command {
	var req query.ExampleRequest

	cmd := &cobra.Command{
		Use:   "example <name>",
		Short: "Print a markdown usage guide for an icon",
		Example: `  icon-hub-mcp example arrow-up --library heroicons
  icon-hub-mcp example user --library phosphor --variant bold`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			req.Name = args[0]
			md, err := svc.ExampleUsage(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Library, "library", "l", "", "Library id (required)")
	cmd.Flags().StringVarP(&req.Variant, "variant", "v", "", "Variant; defaults to the first available")
	_ = cmd.MarkFlagRequired("library")

	return cmd
}

// NewSearchCmd creates the 'search' command.
func NewSearchCmd(opts *GlobalOptions) *cobra.Command {
	var req query.SearchRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Keyword search over icon names, tags, aliases and categories",
		Example: `  icon-hub-mcp search home
  icon-hub-mcp search "delete trash" --library heroicons --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			req.Query = strings.Join(args, " ")
			resp, err := svc.Search(req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			out := cmd.OutOrStdout()
			if resp.Total == 0 {
				fmt.Fprintf(out, "No icons match '%s'.\n", resp.Query)
				return nil
			}
			for _, hit := range resp.Hits {
				fmt.Fprintf(out, "  %-32s %-10s %.3f  %s\n", hit.Name, hit.Library, hit.Score, strings.Join(hit.Variants, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Library, "library", "l", "", "Library id")
	cmd.Flags().IntVarP(&req.Limit, "limit", "n", search.DefaultKeywordLimit, "Maximum number of hits")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
