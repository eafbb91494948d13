package main

import (
	"fmt"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/datasources/file"
	"github.com/neuravox/newsfeed/internal/datasources/rss"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(root *rootFlags) *cobra.Command {
	var (
		feedURL string
		out     string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the journal feed and write it to the snapshot file",
		Long: `Fetch the journal RSS feed and atomically replace the snapshot file with its newest entries.

If the feed cannot be fetched, a snapshot carrying the error is written and the command fails,
so readers see a degraded snapshot rather than a stale one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if feedURL == "" {
				return fmt.Errorf("--feed-url or JOURNAL_FEED_URL is required")
			}
			if out == "" {
				out = root.snapshotPath
			}

			write := command.NewWriteSnapshot(rss.NewFetcher(nil, limit), file.NewSnapshotStore(out, 0))
			snapshot, err := write.Execute(cmd.Context(), command.WriteSnapshotRequest{FeedURL: feedURL})
			if err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Fetched %d article(s) from %s.\n", len(snapshot.Articles), feedURL)
			fmt.Fprintf(w, "Snapshot written to %s.\n", out)
			if len(snapshot.Articles) > 0 {
				fmt.Fprintf(w, "Latest article: %q\n", snapshot.Articles[0].Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&feedURL, "feed-url", envOr("JOURNAL_FEED_URL", ""), "journal RSS feed URL")
	cmd.Flags().StringVar(&out, "out", "", "snapshot output path (defaults to --snapshot)")
	cmd.Flags().IntVar(&limit, "limit", rss.DefaultMaxItems, "maximum number of entries to keep")

	return cmd
}
