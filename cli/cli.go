// Package cli wires the heatmap engine to a cobra command line.
package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stsysd/koyomi/heatmap"
	"github.com/stsysd/koyomi/term"
)

// NewRootCmd builds the koyomi command. Every flag can also be supplied via a
// KOYOMI_* environment variable (KOYOMI_BASE_COLOR, KOYOMI_WEEK_START, ...).
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "koyomi",
		Short: "Render a monthly calendar heatmap from per-day values",
		Long: `koyomi turns a JSON list of per-day values into a monthly calendar
heatmap, rendered as SVG or as a styled terminal block.

The data file holds entries of the form {"date": "2025-02-10", "value": 100}.
Days without a finite value render with the empty color.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	cmd.Flags().String("start", "", "first month of the range (YYYY-MM, default: current month)")
	cmd.Flags().String("end", "", "last month of the range (YYYY-MM, default: current month)")
	cmd.Flags().String("data", "", "path to the JSON data file")
	cmd.Flags().Int("month", 0, "index of the month to display within the range")
	cmd.Flags().String("week-start", "sun", "weekday that starts the week (sun or mon)")
	cmd.Flags().String("base-color", "", "base cell color as hex (default: "+heatmap.DefaultBaseColor+")")
	cmd.Flags().String("empty-color", "", "color for days without data (default: "+heatmap.DefaultEmptyColor+")")
	cmd.Flags().String("unit", "", "unit suffix appended to cell values")
	cmd.Flags().String("lang", "en", "label language (en or ko)")
	cmd.Flags().Bool("legend", true, "show the legend")
	cmd.Flags().String("legend-position", "bottom", "legend position (top or bottom)")
	cmd.Flags().StringSlice("legend-labels", nil, "legend labels, low to high")
	cmd.Flags().String("format", "svg", "output format (svg or term)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	v.SetEnvPrefix("KOYOMI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	var data []heatmap.DayValue
	if path := v.GetString("data"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read data file: %w", err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse data file: %w", err)
		}
	}

	showLegend := v.GetBool("legend")
	in := heatmap.Input{
		Start:         v.GetString("start"),
		Data:          data,
		SelectedIndex: v.GetInt("month"),
		Options: heatmap.Options{
			Range: &heatmap.RangeOptions{
				End:       v.GetString("end"),
				WeekStart: heatmap.WeekStart(v.GetString("week-start")),
			},
			Cell: &heatmap.CellOptions{
				BaseColor:  v.GetString("base-color"),
				EmptyColor: v.GetString("empty-color"),
				ValueUnit:  v.GetString("unit"),
			},
			Labels: &heatmap.LabelOptions{
				WeekdayLanguage: heatmap.Language(v.GetString("lang")),
			},
			Legend: &heatmap.LegendOptions{
				Show:     &showLegend,
				Position: heatmap.LegendPosition(v.GetString("legend-position")),
				Labels:   v.GetStringSlice("legend-labels"),
			},
		},
	}
	view := heatmap.Assemble(in)

	var out string
	switch format := v.GetString("format"); format {
	case "svg":
		out = heatmap.GenerateMonthlyHeatmapSVG(view)
	case "term":
		out = term.Render(view)
	default:
		return fmt.Errorf("unknown format %q (want svg or term)", format)
	}

	if path := v.GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
