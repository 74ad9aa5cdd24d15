package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

var (
	getJSON      bool
	listCategory string
	listType     string
	listVoid     bool
	listJSON     bool
)

var getCmd = &cobra.Command{
	Use:   "get [tag]",
	Short: "Show one element",
	Long:  `Prints the registry record for a tag. Tags are matched case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var isCmd = &cobra.Command{
	Use:   "is [type] [tag]",
	Short: "Check whether a tag has a type",
	Long: `Prints true if the tag exists and has the given type, false otherwise.

Types: block, body, form, inline, meta, multimedia, root, script, table`,
	Args: cobra.ExactArgs(2),
	RunE: runIs,
}

var voidCmd = &cobra.Command{
	Use:   "void [tag]",
	Short: "Check whether a tag is a void element",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoid,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List elements",
	Long:  `Lists elements, optionally filtered by category, type or void-ness.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List all element types",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only elements in this category")
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "only elements of this type")
	listCmd.Flags().BoolVar(&listVoid, "void", false, "only void elements")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.MarkFlagsMutuallyExclusive("category", "type", "void")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(isCmd)
	rootCmd.AddCommand(voidCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(typesCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	el, ok := q.GetElement(args[0])
	if !ok {
		return fmt.Errorf("%w: element %q", domain.ErrNotFound, args[0])
	}

	if getJSON {
		return printJSON(cmd, el)
	}

	cmd.Printf("<%s>\n\n", el.Tag)
	cmd.Printf("  Type:     %s\n", el.Type)
	cmd.Printf("  Category: %s\n", el.Category)
	cmd.Printf("  Void:     %t\n", el.IsVoid)
	cmd.Printf("  URL:      %s\n", el.URL)
	if el.Description != "" {
		cmd.Printf("\n  %s\n", el.Description)
	}
	return nil
}

func runIs(cmd *cobra.Command, args []string) error {
	t, ok := domain.ParseElementType(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedType, args[0])
	}

	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println(q.IsElementType(args[1], t))
	return nil
}

func runVoid(cmd *cobra.Command, args []string) error {
	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println(q.IsVoid(args[0]))
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	var elements []domain.Element
	switch {
	case listCategory != "":
		elements = q.GetElementsByCategory(listCategory)
	case listType != "":
		t, ok := domain.ParseElementType(listType)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedType, listType)
		}
		elements = q.GetElementsByType(t)
	case listVoid:
		elements = q.GetVoidElements()
	default:
		for _, t := range q.GetAllTypes() {
			elements = append(elements, q.GetElementsByType(t)...)
		}
		sort.Slice(elements, func(i, j int) bool {
			return elements[i].Tag < elements[j].Tag
		})
	}

	if listJSON {
		if elements == nil {
			elements = []domain.Element{}
		}
		return printJSON(cmd, elements)
	}

	if len(elements) == 0 {
		cmd.Println("No elements found.")
		return nil
	}

	for i := range elements {
		void := ""
		if elements[i].IsVoid {
			void = "void"
		}
		cmd.Printf("  %-16s %-11s %-4s  %s\n", elements[i].Tag, elements[i].Type, void, elements[i].Category)
	}
	cmd.Printf("\nTotal: %d elements\n", len(elements))
	return nil
}

func runCategories(cmd *cobra.Command, _ []string) error {
	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	for _, c := range q.GetAllCategories() {
		cmd.Println(c)
	}
	return nil
}

func runTypes(cmd *cobra.Command, _ []string) error {
	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	for _, t := range q.GetAllTypes() {
		cmd.Println(t)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
