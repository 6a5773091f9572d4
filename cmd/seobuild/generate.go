package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"antalyaride.com/web/internal/catalog"
	"antalyaride.com/web/internal/seo"
	"antalyaride.com/web/internal/sitemap"
)

func newGenerateCmd() *cobra.Command {
	var (
		outDir     string
		contentDir string
		configPath string
		strict     bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build sitemap.xml and robots.txt",
		Long: `Builds the complete sitemap from the content catalog and writes it,
together with robots.txt, into the output directory. Files are written to a
temporary path and renamed, so a failed run never leaves a partial file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
				With().Timestamp().Logger()

			cfg := seo.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = seo.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return err
			}

			gen := sitemap.New(cfg, log)
			res := gen.Build(cmd.Context(), catalog.NewStatic(contentDir))

			if err := writeAtomic(filepath.Join(outDir, "sitemap.xml"), []byte(res.XML)); err != nil {
				return fmt.Errorf("write sitemap: %w", err)
			}
			if err := writeAtomic(filepath.Join(outDir, "robots.txt"), []byte(gen.Robots())); err != nil {
				return fmt.Errorf("write robots.txt: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sitemap.xml written: %d URLs\n", res.URLCount)
			if res.Degraded() {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: degraded sections: %v\n", res.Failed)
				if strict {
					return fmt.Errorf("sitemap degraded: sections %v failed", res.Failed)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "public", "output directory")
	cmd.Flags().StringVar(&contentDir, "content", "content", "content directory")
	cmd.Flags().StringVar(&configPath, "config", "", "site config YAML (optional)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any sitemap section is degraded")
	return cmd
}

// writeAtomic writes to a temp file in the target directory and renames it
// into place. Readers never observe a half-written file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
