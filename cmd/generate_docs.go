package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newGenerateDocsCmd() *cobra.Command {
	var (
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate CLI documentation",
		Long: `Generate markdown documentation for every rendezvous command.
This command introspects the registered commands and their flags, so the
documentation always matches the actual CLI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateDocs(cmd.Root(), outputFile, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runGenerateDocs(root *cobra.Command, outputFile string, stdout, stderr io.Writer) error {
	markdown := generateCommandsMarkdown(root)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(stderr, "Documentation written to: %s\n", outputFile)
		return nil
	}

	_, err := io.WriteString(stdout, markdown)
	return err
}

func generateCommandsMarkdown(root *cobra.Command) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# CLI Reference\n\n")
	sb.WriteString(fmt.Sprintf("%s\n\n", root.Short))
	sb.WriteString("**Note:** This documentation is automatically generated from the command definitions.\n\n")

	commands := documentedCommands(root)

	// Table of contents
	sb.WriteString("## Table of Contents\n\n")
	for _, c := range commands {
		anchor := strings.ReplaceAll(c.CommandPath(), " ", "-")
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", c.CommandPath(), anchor))
	}
	sb.WriteString("\n")

	if flags := flagsMarkdown(root.PersistentFlags()); flags != "" {
		sb.WriteString("## Global Flags\n\n")
		sb.WriteString(flags)
		sb.WriteString("\n")
	}

	for _, c := range commands {
		sb.WriteString(generateCommandMarkdown(c))
		sb.WriteString("\n")
	}

	return sb.String()
}

// documentedCommands returns the available subcommands of root, sorted by name.
func documentedCommands(root *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		commands = append(commands, c)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

func generateCommandMarkdown(c *cobra.Command) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", c.CommandPath()))

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}
	if desc != "" {
		sb.WriteString(fmt.Sprintf("%s\n\n", desc))
	}

	sb.WriteString(fmt.Sprintf("```\n%s\n```\n\n", c.UseLine()))

	if c.Example != "" {
		sb.WriteString("**Examples:**\n\n")
		sb.WriteString(fmt.Sprintf("```\n%s\n```\n\n", c.Example))
	}

	if flags := flagsMarkdown(c.NonInheritedFlags()); flags != "" {
		sb.WriteString("**Flags:**\n")
		sb.WriteString(flags)
		sb.WriteString("\n")
	}

	return sb.String()
}

func flagsMarkdown(flags *pflag.FlagSet) string {
	var sb strings.Builder
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		sb.WriteString(fmt.Sprintf("- `--%s` (%s)", f.Name, f.Value.Type()))
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			sb.WriteString(fmt.Sprintf(" default `%s`", f.DefValue))
		}
		sb.WriteString(fmt.Sprintf(": %s\n", f.Usage))
	})
	return sb.String()
}
