package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/treelint/internal/ui/pretty"
)

// helpPalette holds the styles used by command help.
type helpPalette struct {
	command lipgloss.Style
	heading lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpPalette(colorEnabled bool) helpPalette {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpPalette{command: plain, heading: plain, name: plain, flag: plain, dim: plain}
	}
	return helpPalette{
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders cobra help and usage text with lipgloss styles.
type HelpFormatter struct {
	palette helpPalette
}

// NewHelpFormatter creates a formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{palette: newHelpPalette(pretty.IsColorEnabled(colorMode, writer))}
}

const usageText = `{{heading "Usage:"}}
{{- if .Runnable}}
  {{command .UseLine}}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]
{{- end}}
{{- if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{heading "Commands:"}}
{{- range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{name (pad .Name .NamePadding)}} {{.Short}}
{{- end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}
{{- end}}
{{- if .HasAvailableSubCommands}}

Run "{{command (print .CommandPath " [command] --help")}}" for details on a command.
{{- end}}
`

const helpText = `{{with (or .Long .Short)}}{{trim .}}

{{end}}` + usageText

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command": h.palette.command.Render,
		"heading": h.palette.heading.Render,
		"name":    h.palette.name.Render,
		"dim":     h.palette.dim.Render,
		"flags":   h.renderFlags,
		"pad":     padRight,
		"trim":    trimLineEnds,
	}
}

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit them from the root.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageText))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpText))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := usage.Execute(c.OutOrStderr(), c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// renderFlags styles pflag's aligned usage block. Each line holds the flag
// names, an optional type and the description after a run of spaces.
func (h *HelpFormatter) renderFlags(set *pflag.FlagSet) string {
	lines := strings.Split(strings.TrimRight(set.FlagUsages(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = h.renderFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) renderFlagLine(line string) string {
	body := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(body)]

	head, desc, found := strings.Cut(body, "   ")
	if !found {
		return line
	}
	gap := len(desc) - len(strings.TrimLeft(desc, " "))

	words := strings.Fields(head)
	for i, word := range words {
		if strings.HasPrefix(word, "-") {
			words[i] = h.palette.flag.Render(strings.TrimSuffix(word, ",")) + suffixComma(word)
		} else {
			words[i] = h.palette.dim.Render(word)
		}
	}

	return indent + strings.Join(words, " ") + strings.Repeat(" ", gap+3) + strings.TrimLeft(desc, " ")
}

func suffixComma(word string) string {
	if strings.HasSuffix(word, ",") {
		return ","
	}
	return ""
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimLineEnds(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}
