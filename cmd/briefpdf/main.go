package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/briefpdf/briefpdf/pkg/api"
)

var rootCmd = &cobra.Command{
	Use:   "briefpdf",
	Short: "briefpdf - paginated PDF generation for legal documents",
	Long: `briefpdf flows legal document content onto fixed-size pages under
document-type formatting rules (margins, spacing, signature block
handling) and renders the result to PDF.

Examples:
  # Render a JSON document template
  briefpdf render contract.json -o contract.pdf

  # Render an HTML document as a motion with custom rules
  briefpdf render motion.html --type motion --rules firm-rules.yaml`,
}

var renderCmd = &cobra.Command{
	Use:   "render [input]",
	Short: "Render a document source (JSON template or HTML) to PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output PDF file path (default: input with .pdf extension)")
	renderCmd.Flags().StringP("type", "t", "", "Document type (overrides the type declared in the input)")
	renderCmd.Flags().String("rules", "", "YAML formatting rules override file")
	renderCmd.Flags().String("title", "", "Document title metadata")
	renderCmd.Flags().String("author", "", "Document author metadata")
	renderCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	viper.SetEnvPrefix("BRIEFPDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

	outputFile := viper.GetString("output")
	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	converter := api.NewWithOptions(api.Options{
		DocumentType: viper.GetString("type"),
		RulesFile:    viper.GetString("rules"),
		Title:        viper.GetString("title"),
		Author:       viper.GetString("author"),
		Debug:        viper.GetBool("verbose"),
		Logger:       logger,
	})

	if err := converter.ConvertFile(inputFile, outputFile); err != nil {
		return fmt.Errorf("failed to render %s: %w", inputFile, err)
	}

	if viper.GetBool("verbose") {
		fmt.Printf("Successfully rendered %s to %s\n", inputFile, outputFile)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
