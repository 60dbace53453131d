// cwl-inspector answers path-expression queries over CWL documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tom-tan/cwl-inspector/internal/inspect"
	"github.com/tom-tan/cwl-inspector/internal/logging"
	"github.com/tom-tan/cwl-inspector/internal/parser"
	"github.com/tom-tan/cwl-inspector/pkg/cwl"
	"gopkg.in/yaml.v3"
)

var (
	outDir  string
	tmpDir  string
	asYAML  bool
	asJSON  bool
	verbose bool
	quiet   bool
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "cwl-inspector [flags] <doc> <pos>",
		Short:   "Inspector for Common Workflow Language",
		Version: version,
		Long: `cwl-inspector resolves path expressions over a CWL document.

Examples:
  # The whole document
  cwl-inspector echo.cwl .

  # A field, by identifier or by index
  cwl-inspector echo.cwl .inputs.input.label
  cwl-inspector echo.cwl .inputs.0.label

  # Declared field names at a position
  cwl-inspector echo.cwl 'keys(.)'

  # Files an output denotes
  cwl-inspector --outdir /data/out echo.cwl 'ls(.outputs.output)'
`,
		Args:          cobra.ExactArgs(2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&outDir, "outdir", "", "Output directory (default: current directory)")
	rootCmd.Flags().StringVar(&tmpDir, "tmpdir", "", "Temporary directory")
	rootCmd.Flags().BoolVar(&asYAML, "yaml", false, "Print in YAML format")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cwl-inspector:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.Level(verbose, quiet))

	docPath, pos := args[0], args[1]

	env, err := buildEnvironment()
	if err != nil {
		return err
	}

	doc, err := parser.New(logger).Load(docPath)
	if err != nil {
		return err
	}
	logger.Debug("inspecting", "doc", docPath, "class", doc.Class, "pos", pos)

	ret, err := inspect.Inspect(doc, pos, env)
	if err != nil {
		return err
	}

	return printResult(ret)
}

// buildEnvironment assembles the per-query environment from the flags.
// The output directory defaults to the current directory and is always
// absolute.
func buildEnvironment() (*inspect.Environment, error) {
	dir := outDir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve outdir: %w", err)
	}

	return &inspect.Environment{
		Runtime: inspect.Runtime{
			OutDir: abs,
			TmpDir: tmpDir,
		},
		Args: map[string]any{},
	}, nil
}

// printResult writes the query result to stdout in the selected
// format.
func printResult(ret any) error {
	switch {
	case asYAML:
		data, err := yaml.Marshal(cwl.Save(ret))
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Print(string(data))
	case asJSON:
		data, err := cwl.MarshalJSON(ret)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Println(cwl.Save(ret))
	}
	return nil
}
