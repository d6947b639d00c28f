package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
)

type checksFlags struct {
	checkFormat string
	format      string
}

const formatJSON = "json"

// checkInfo represents a check in JSON output.
type checkInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags"`
}

func newChecksCommand() *cobra.Command {
	flags := &checksFlags{}

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List available checks",
		Long: `List every registered check with its ID, name, default severity,
whether it runs without configuration, and its description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checks := check.DefaultRegistry.Checks()

			switch flags.format {
			case formatJSON:
				return outputChecksJSON(cmd, checks)
			case "table", "text":
				outputChecksTable(cmd, checks, config.CheckFormat(flags.checkFormat))
				return nil
			default:
				return fmt.Errorf("invalid format %q: must be table or json", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.checkFormat, "check-format", "id",
		"check identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "table", "output format: table, json")

	return cmd
}

func outputChecksTable(cmd *cobra.Command, checks []check.Check, format config.CheckFormat) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"Check", "Severity", "Default", "Tags", "Description"})

	for _, chk := range checks {
		enabled := "off"
		if chk.DefaultEnabled() {
			enabled = "on"
		}
		tw.AppendRow(table.Row{
			config.FormatCheckID(format, chk.ID(), chk.Name()),
			chk.DefaultSeverity(),
			enabled,
			strings.Join(chk.Tags(), ", "),
			chk.Description(),
		})
	}

	tw.AppendFooter(table.Row{fmt.Sprintf("%d checks", len(checks))})
	tw.Render()
}

func outputChecksJSON(cmd *cobra.Command, checks []check.Check) error {
	infos := make([]checkInfo, 0, len(checks))
	for _, chk := range checks {
		tags := chk.Tags()
		if tags == nil {
			tags = []string{}
		}
		infos = append(infos, checkInfo{
			ID:          chk.ID(),
			Name:        chk.Name(),
			Description: chk.Description(),
			Severity:    string(chk.DefaultSeverity()),
			Enabled:     chk.DefaultEnabled(),
			Tags:        tags,
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checks: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), data)
}

// checkInfos describes the registered checks for config templates.
func checkInfos() []config.CheckInfo {
	checks := check.DefaultRegistry.Checks()
	infos := make([]config.CheckInfo, 0, len(checks))
	for _, chk := range checks {
		infos = append(infos, config.CheckInfo{
			ID:          chk.ID(),
			Name:        chk.Name(),
			Description: chk.Description(),
			Enabled:     chk.DefaultEnabled(),
			Severity:    chk.DefaultSeverity(),
			Tags:        chk.Tags(),
		})
	}
	return infos
}
