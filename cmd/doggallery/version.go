package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of doggallery",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		printBanner(out, termenv.NewOutput(out).Profile)
		fmt.Fprintf(out, "doggallery version %s\n", strings.TrimSpace(version))
	},
}

var bannerLines = []struct {
	text  string
	color string
}{
	{`     / \__`, "#719cd6"},
	{`    (    @\___`, "#63cdcf"},
	{`    /         O`, "#81b29a"},
	{`   /   (_____/`, "#dbc074"},
	{`  /_____/   U   doggallery`, "#c94f6d"},
}

// printBanner writes the colored banner using profile p.
func printBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
