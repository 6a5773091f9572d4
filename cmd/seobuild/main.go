// seobuild generates the static SEO artifacts (sitemap.xml, robots.txt) for
// deployment alongside the site's public assets.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "seobuild",
		Short:        "Generate SEO artifacts for antalyaride.com",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
