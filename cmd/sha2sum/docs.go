package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var docsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate man pages or markdown reference for sha2sum",
	Hidden: true,
	RunE:   runGenDocs,
}

func init() {
	docsCmd.Flags().String("dir", "docs", "directory to write generated files into")
	docsCmd.Flags().String("format", "man", "doc format: man or markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")       //nolint:errcheck // flag name is hardcoded
	format, _ := cmd.Flags().GetString("format") //nolint:errcheck // flag name is hardcoded

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Generate from the root command so every subcommand is covered.
	switch format {
	case "man":
		return doc.GenManTree(cmd.Root(), &doc.GenManHeader{
			Title:   "SHA2SUM",
			Section: "1",
			Source:  fmt.Sprintf("sha2sum %s", version),
			Manual:  "User Commands",
		}, dir)
	case "markdown":
		return doc.GenMarkdownTree(cmd.Root(), dir)
	default:
		return fmt.Errorf("unknown format %q (use man or markdown)", format)
	}
}
