package espn

import (
	"strings"

	"nba-companion-service/internal/domain/news"
)

// mapArticles normalizes the news feed. Articles without any identity (no
// source identifier and no web link) are dropped and counted; the web link
// doubles as the ID when the identifier is absent.
func mapArticles(payload newsResponse) ([]news.Article, int) {
	articles := make([]news.Article, 0, len(payload.Articles))
	dropped := 0

	for _, a := range payload.Articles {
		id := strings.TrimSpace(a.DataSourceIdentifier)
		link := strings.TrimSpace(a.Links.Web.Href)
		if id == "" {
			id = link
		}
		if id == "" {
			dropped++
			continue
		}

		articles = append(articles, news.Article{
			ID:          id,
			Headline:    a.Headline,
			Description: a.Description,
			Published:   a.Published,
			ImageURL:    firstImage(a.Images),
			Category:    firstCategory(a.Categories),
			Link:        link,
		})
	}

	return articles, dropped
}

func firstImage(images []image) string {
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}

func firstCategory(categories []category) string {
	for _, c := range categories {
		if c.Description != "" {
			return c.Description
		}
	}
	return ""
}
