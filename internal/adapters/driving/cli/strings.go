package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

var errNoStringService = errors.New("string service not configured")

var listParams domain.QueryParams

var analyzeCmd = &cobra.Command{
	Use:   "analyze [value]",
	Short: "Analyse and store a string",
	Long: `Analyses a string and stores it with its derived properties.

The value is stored byte for byte; quote it to keep spaces.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var getCmd = &cobra.Command{
	Use:   "get [value]",
	Short: "Show a stored string",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored strings, optionally filtered",
	Long: `Lists stored strings in insertion order. Filters combine with AND.

Examples:
  strindex list --is-palindrome true --min-length 3
  strindex list --word-count 2 --contains-character a`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var queryCmd = &cobra.Command{
	Use:   "query [phrase]",
	Short: "Filter stored strings with a recognised phrase",
	Long: `Filters stored strings with one of the recognised phrases:

  all single word palindromic strings
  strings longer than 10 characters
  palindromic strings that contain the first vowel
  strings containing the letter z`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [value]",
	Short: "Delete a stored string",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	flags := listCmd.Flags()
	flags.StringVar(&listParams.IsPalindrome, "is-palindrome", "", "true or false")
	flags.StringVar(&listParams.MinLength, "min-length", "", "minimum length")
	flags.StringVar(&listParams.MaxLength, "max-length", "", "maximum length")
	flags.StringVar(&listParams.WordCount, "word-count", "", "exact word count")
	flags.StringVar(&listParams.ContainsCharacter, "contains-character", "", "substring the value must contain")

	rootCmd.AddCommand(analyzeCmd, getCmd, listCmd, queryCmd, deleteCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if stringService == nil {
		return errNoStringService
	}

	rec, err := stringService.Create(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if jsonOutput {
		return writeJSON(cmd, rec)
	}
	newPrinter(cmd).Record(rec)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	if stringService == nil {
		return errNoStringService
	}

	rec, err := stringService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	if jsonOutput {
		return writeJSON(cmd, rec)
	}
	newPrinter(cmd).Record(rec)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if stringService == nil {
		return errNoStringService
	}

	res, err := stringService.List(cmd.Context(), listParams)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if jsonOutput {
		return writeJSON(cmd, res)
	}
	p := newPrinter(cmd)
	p.Note("filters: %s", formatFilters(res.FiltersApplied))
	p.Records(res.Data)
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	if stringService == nil {
		return errNoStringService
	}

	res, err := stringService.Query(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if jsonOutput {
		return writeJSON(cmd, res)
	}
	parsed, err := res.InterpretedQuery.ParsedFilters.MarshalJSON()
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	p := newPrinter(cmd)
	p.Note("interpreted as: %s", parsed)
	p.Records(res.Data)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if stringService == nil {
		return errNoStringService
	}

	if err := stringService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	cmd.Printf("Deleted %q\n", args[0])
	return nil
}
