package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"game-press/config"
	"game-press/content"
	"game-press/contentapi"
)

// feedPageSize is how many posts the RSS feed and sitemap pull.
const feedPageSize = 50

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	Category    string `xml:"category,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// RSSHandler serves /feed.xml with the latest published posts. Degrading:
// when the content API is down the feed is just empty.
func RSSHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig().Site
		result := client.ListPosts(c.Request.Context(), contentapi.ListPostsParams{Limit: feedPageSize}, "")

		items := make([]rssItem, 0, len(result.Data))
		for _, p := range result.Data {
			excerpt := p.Excerpt
			if excerpt == "" {
				excerpt = content.ExcerptFallback(p.Content, 160)
			}
			items = append(items, rssItem{
				Title:       p.Title,
				Link:        cfg.URL + "/blog/" + p.Slug,
				GUID:        cfg.URL + "/blog/" + p.Slug,
				Description: excerpt,
				PubDate:     rfc1123Date(p.CreatedAt),
				Category:    content.CategoryName(p),
			})
		}

		feed := rssFeed{
			Version: "2.0",
			Channel: rssChannel{
				Title:       cfg.Name,
				Link:        cfg.URL,
				Description: cfg.Description,
				Language:    "pt-BR",
				Items:       items,
			},
		}
		c.XML(http.StatusOK, feed)
	}
}

// SitemapHandler serves /sitemap.xml covering the fixed pages, the category
// pages and every listed post.
func SitemapHandler(client *contentapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig().Site
		ctx := c.Request.Context()

		urls := []sitemapURL{
			{Loc: cfg.URL + "/", ChangeFreq: "daily", Priority: "1.0"},
			{Loc: cfg.URL + "/blog", ChangeFreq: "daily", Priority: "0.9"},
			{Loc: cfg.URL + "/produtos", ChangeFreq: "weekly", Priority: "0.6"},
			{Loc: cfg.URL + "/sobre", ChangeFreq: "monthly", Priority: "0.3"},
			{Loc: cfg.URL + "/contato", ChangeFreq: "monthly", Priority: "0.3"},
		}

		for _, cat := range client.ListCategories(ctx) {
			urls = append(urls, sitemapURL{
				Loc:        cfg.URL + "/categoria/" + cat.Slug,
				ChangeFreq: "weekly",
				Priority:   "0.7",
			})
		}

		result := client.ListPosts(ctx, contentapi.ListPostsParams{Limit: feedPageSize}, "")
		for _, p := range result.Data {
			urls = append(urls, sitemapURL{
				Loc:        cfg.URL + "/blog/" + p.Slug,
				LastMod:    isoDate(p.UpdatedAt),
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}

		c.XML(http.StatusOK, sitemapURLSet{
			XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  urls,
		})
	}
}

func rfc1123Date(iso string) string {
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.Format(time.RFC1123Z)
	}
	return ""
}

func isoDate(iso string) string {
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}
