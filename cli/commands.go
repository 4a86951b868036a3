// Package cli provides the Cobra-based CLI for altitudegear.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atripati/altetudegear/domain"
	"github.com/atripati/altetudegear/importer"
	"github.com/atripati/altetudegear/query"
	"github.com/atripati/altetudegear/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "altitudegear",
		Short: "Catalog import and query tool for the AltitudeGear shop",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store
			if catalog != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			storage, err := store.NewStorage(
				viper.GetString("store"),
				viper.GetString("store-file"),
			)
			if err != nil {
				return err
			}
			catalog = store.New(store.DefaultBase(), storage)
			return nil
		},
	}

	catalog *store.Store
)

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("altitudegear> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "file", "storage backend: memory|file")
	rootCmd.PersistentFlags().String("store-file", "data/custom-products.json", "custom product storage path")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store-file", rootCmd.PersistentFlags().Lookup("store-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("ALTITUDEGEAR")
	viper.AutomaticEnv()

	// import
	var importFile, importFormat string
	var importJSONOut bool
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Bulk-import custom products from JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			format := importer.Format(importFormat)
			if importFormat == "" {
				detected, ok := importer.DetectFormat(importFile)
				if !ok {
					return errors.New("cannot infer format from file name, pass --format json|csv")
				}
				format = detected
			}

			records, err := importer.Parse(format, string(b))
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := importer.New(catalog).Import(records)
			if err != nil {
				slog.Error("import failed", "file", importFile, "error", err)
				return err
			}
			slog.Info("import finished",
				"file", importFile,
				"accepted", result.SuccessCount,
				"rejected", len(result.Errors),
				"duration_ms", time.Since(start).Milliseconds(),
			)

			if importJSONOut {
				printJSON(result)
				return nil
			}
			fmt.Printf("%d product(s) imported\n", result.SuccessCount)
			for _, record := range result.Errors {
				fmt.Printf("Row %d: %s\n", record.Index+1, strings.Join(record.Errors, "; "))
			}
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	importCmd.Flags().StringVar(&importFormat, "format", "", "input format: json|csv (inferred from extension when empty)")
	importCmd.Flags().BoolVar(&importJSONOut, "json", false, "print the import report as JSON")
	rootCmd.AddCommand(importCmd)

	// add (single-record upsert, no normalization)
	var addFile string
	addCmd := &cobra.Command{
		Use:   "add --file <file>",
		Short: "Upsert a single complete custom product from a JSON object",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addFile == "" {
				return errors.New("--file required")
			}
			b, err := os.ReadFile(addFile)
			if err != nil {
				return err
			}
			var p domain.Product
			if err := json.Unmarshal(b, &p); err != nil {
				return domain.NewParseError(fmt.Sprintf("Unable to parse JSON: %v", err))
			}
			if p.ID == "" {
				p.ID = "custom-" + uuid.NewString()
			}
			if err := catalog.UpsertCustom(p); err != nil {
				slog.Error("upsert failed", "slug", p.Slug, "error", err)
				return err
			}
			slog.Info("product saved", "slug", p.Slug, "id", p.ID)
			printJSON(p)
			return nil
		},
	}
	addCmd.Flags().StringVar(&addFile, "file", "", "product JSON file")
	rootCmd.AddCommand(addCmd)

	// list
	var lSearch, lCategory, lCollection, lSize, lColor, lSort, lOutput string
	var lMin, lMax float64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Query the merged catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var minPtr, maxPtr *float64
			if cmd.Flags().Changed("min-price") {
				minPtr = &lMin
			}
			if cmd.Flags().Changed("max-price") {
				maxPtr = &lMax
			}
			out := query.Run(catalog.Merged(), query.Spec{
				SearchTerm: lSearch,
				Collection: lCollection,
				Category:   lCategory,
				Size:       lSize,
				Color:      lColor,
				MinPrice:   minPtr,
				MaxPrice:   maxPtr,
				SortBy:     lSort,
			})
			if lOutput == "json" {
				printJSON(out)
				return nil
			}
			for _, p := range out {
				fmt.Printf("%s | %s | %.2f | %s | %s\n",
					p.Slug, p.Name, p.Price, p.Category, p.Collection)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lSearch, "search", "", "search term (name, description, tags)")
	listCmd.Flags().StringVar(&lCategory, "category", "", "category")
	listCmd.Flags().StringVar(&lCollection, "collection", "", "collection")
	listCmd.Flags().StringVar(&lSize, "size", "", "size with stock available")
	listCmd.Flags().StringVar(&lColor, "color", "", "color name")
	listCmd.Flags().Float64Var(&lMin, "min-price", 0, "min price")
	listCmd.Flags().Float64Var(&lMax, "max-price", 0, "max price")
	listCmd.Flags().StringVar(&lSort, "sort", query.SortFeatured, "sort order: featured|newest|price-low|price-high")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Get a product by slug (falls back to id)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := catalog.BySlug(args[0])
			if !ok {
				p, ok = catalog.ByID(args[0])
			}
			if !ok {
				fmt.Fprintln(os.Stderr, domain.NewProductNotFoundError(args[0]))
				return nil
			}
			printJSON(p)
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a custom product by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			removed, err := catalog.DeleteCustom(args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Println("deleted")
			} else {
				fmt.Println("not found")
			}
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// clear
	var clearForce bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all custom products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearForce {
				fmt.Print("Remove all custom products? (y/N): ")
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := catalog.ClearCustom(); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(clearCmd)

	// export
	var exportFile string
	var exportMerged bool
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export products to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			out := catalog.Custom()
			if exportMerged {
				out = catalog.Merged()
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	exportCmd.Flags().BoolVar(&exportMerged, "merged", false, "export the merged catalog instead of custom products only")
	rootCmd.AddCommand(exportCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
