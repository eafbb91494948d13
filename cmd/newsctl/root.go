package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	snapshotPath      string
	localNewsPath     string
	featureConfigPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "newsctl",
		Short:         "Manage the journal snapshot and query the news collection",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flags.snapshotPath, "snapshot",
		envOr("SNAPSHOT_PATH", defaultSnapshotPath()), "path of the journal snapshot file")
	root.PersistentFlags().StringVar(&flags.localNewsPath, "local-news",
		envOr("LOCAL_NEWS_PATH", "data/news.json"), "path of the curated local news file")
	root.PersistentFlags().StringVar(&flags.featureConfigPath, "feature-config",
		envOr("FEATURE_CONFIG_PATH", "admin-config.yaml"), "path of the feature config file")

	root.AddCommand(newSnapshotCmd(flags))
	root.AddCommand(newSearchCmd(flags))
	root.AddCommand(newCategoriesCmd(flags))

	return root
}

func defaultSnapshotPath() string {
	return filepath.Join(xdg.DataHome, "newsfeed", "journal-snapshot.json")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
