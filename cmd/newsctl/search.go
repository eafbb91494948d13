package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/datasources/file"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/spf13/cobra"
)

// offlineNews builds the collection from the snapshot and local news files alone.
func offlineNews(root *rootFlags) (*command.AggregateNews, *file.FeatureConfig) {
	featureConfig := file.NewFeatureConfig(root.featureConfigPath)
	news := command.NewAggregateNews(
		file.LocalNews{Path: root.localNewsPath},
		[]datasources.Provider[domain.JournalArticles]{
			datasources.JournalProvider("snapshot", file.NewSnapshotStore(root.snapshotPath, 0)),
		},
		command.AggregateNewsConfig{DefaultAuthor: envOr("JOURNAL_DEFAULT_AUTHOR", "Editorial Team")},
	)
	return news, featureConfig
}

func newSearchCmd(root *rootFlags) *cobra.Command {
	var (
		categories  string
		articleType string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Fuzzy search the news collection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := command.SearchNewsRequest{Limit: limit}
			if len(args) == 1 {
				req.Query = args[0]
			}
			for _, c := range strings.Split(categories, ",") {
				if c = strings.TrimSpace(c); c != "" {
					req.Categories = append(req.Categories, c)
				}
			}
			if articleType != "" {
				t := domain.ArticleType(articleType)
				if !t.Valid() {
					return fmt.Errorf("unknown article type %q", articleType)
				}
				req.Type = t
			}

			news, featureConfig := offlineNews(root)
			collection, _ := news.Execute(cmd.Context(), command.AggregateNewsRequest{})
			if collection.Error != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", collection.Error)
			}

			articles, err := command.NewSearchNews(news, featureConfig).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			printArticles(cmd.OutOrStdout(), articles)
			return nil
		},
	}

	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated category filter")
	cmd.Flags().StringVar(&articleType, "type", "", "article type filter (journal, local, external)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (defaults to the configured maximum)")

	return cmd
}

func newCategoriesCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories used in the news collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			news, _ := offlineNews(root)
			categories, err := command.NewListCategories(news).Execute(cmd.Context(), command.Empty{})
			if err != nil {
				return err
			}

			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func printArticles(w io.Writer, articles []domain.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	for _, a := range articles {
		date := a.PublishedAt
		if t, ok := a.PublishedTime(); ok {
			date = t.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%-10s  %-8s  %s\n", date, a.Type, a.Title)
	}
}
