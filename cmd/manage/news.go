package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
)

// Accepted --date layouts.
var newsDateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

func newsCommand(m *manage) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Publish and remove news",
	}

	var title, text, date string
	publish := &cobra.Command{
		Use:   "publish",
		Short: "Publish a news item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			news := &models.News{Title: title, Text: text}
			if date != "" {
				d, err := parseNewsDate(date)
				if err != nil {
					return err
				}
				news.Date = d
			}
			if err := news.Validate(); err != nil {
				return fmt.Errorf("invalid news: %w", err)
			}

			return m.withRepositories(func(repos *repository.Repositories) error {
				if err := repos.News.Create(news); err != nil {
					return fmt.Errorf("publish news: %w", err)
				}
				printf(cmd, "Published news #%d %q", news.ID, news.Title)
				return nil
			})
		},
	}
	publish.Flags().StringVar(&title, "title", "", "headline, at most 50 characters")
	publish.Flags().StringVar(&text, "text", "", "body text")
	publish.Flags().StringVar(&date, "date", "", "publication date (RFC 3339 or YYYY-MM-DD), defaults to now")
	_ = publish.MarkFlagRequired("title")
	_ = publish.MarkFlagRequired("text")

	var id uint
	remove := &cobra.Command{
		Use:   "delete",
		Short: "Delete a news item and its comments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.withRepositories(func(repos *repository.Repositories) error {
				if err := repos.News.Delete(id); err != nil {
					return fmt.Errorf("delete news #%d: %w", id, err)
				}
				printf(cmd, "Deleted news #%d", id)
				return nil
			})
		},
	}
	remove.Flags().UintVar(&id, "id", 0, "news id")
	_ = remove.MarkFlagRequired("id")

	cmd.AddCommand(publish, remove)

	return cmd
}

func parseNewsDate(s string) (time.Time, error) {
	for _, layout := range newsDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
