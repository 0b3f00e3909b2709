package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"color-api/feature/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <hex>...",
	Short: "Convert hex color codes to RGB",
	Long:  `Converts one or more hex color codes (e.g. FF5733, #FFF) without starting the server. Outputs one line per color, or a JSON array with --json.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runConvert(cmd.OutOrStdout(), args, jsonOutput)
	},
}

// conversionLine is one entry of the --json output.
type conversionLine struct {
	Input  string          `json:"input"`
	Result *convert.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// runConvert converts every code and reports the invalid ones in a single error.
func runConvert(out io.Writer, codes []string, jsonOutput bool) error {
	svc := convert.NewService(zap.NewNop())

	lines := make([]conversionLine, 0, len(codes))
	var invalid []string
	for _, code := range codes {
		res, err := svc.Convert(code)
		if err != nil {
			invalid = append(invalid, code)
			lines = append(lines, conversionLine{Input: code, Error: err.Error()})
			continue
		}
		lines = append(lines, conversionLine{Input: code, Result: res})
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(lines); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		for _, l := range lines {
			if l.Result == nil {
				fmt.Fprintf(out, "%-10s invalid\n", l.Input)
				continue
			}
			fmt.Fprintf(out, "%-10s %s\n", l.Result.Hex, l.Result.CSS)
		}
	}

	if len(invalid) > 0 {
		return errors.New("invalid hex color code: " + strings.Join(invalid, ", "))
	}
	return nil
}

func init() {
	RootCmd.AddCommand(convertCmd)
	convertCmd.Flags().Bool("json", false, "Output results as JSON")
}
