// Package feeds assembles the externally consumed XML artifacts: the RSS 2.0
// feed and the sitemaps.org document. Builders are pure string assemblers;
// every untrusted text node passes through seo.EscapeXML exactly once.
package feeds

import (
	"strings"
	"time"

	"folio/internal/seo"
)

// Item is one RSS <item>. Link and Guid are absolute URLs and PubDate is
// RFC 822 by caller contract.
type Item struct {
	Title       string
	Description string
	Link        string
	PubDate     string
	Guid        string
	Author      string
}

// Channel is the RSS <channel>. Items arrive newest-first by caller
// contract; the builder does not re-sort.
type Channel struct {
	Title          string
	Description    string
	Link           string
	Language       string
	Copyright      string
	ManagingEditor string
	WebMaster      string
	LastBuildDate  string
	Items          []Item
}

// BuildRSS renders the channel as an RSS 2.0 document. Language defaults to
// en-US and LastBuildDate to the current time; optional channel fields are
// emitted only when present. Zero items yields a valid empty channel.
func BuildRSS(ch Channel) string {
	language := ch.Language
	if language == "" {
		language = "en-US"
	}
	lastBuild := ch.LastBuildDate
	if lastBuild == "" {
		lastBuild = seo.FormatRSSDate(time.Now())
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	b.WriteString("  <channel>\n")
	b.WriteString("    <title>" + seo.EscapeXML(ch.Title) + "</title>\n")
	b.WriteString("    <description>" + seo.EscapeXML(ch.Description) + "</description>\n")
	b.WriteString("    <link>" + seo.EscapeXML(ch.Link) + "</link>\n")
	b.WriteString("    <language>" + language + "</language>\n")
	b.WriteString("    <lastBuildDate>" + lastBuild + "</lastBuildDate>\n")
	b.WriteString(`    <atom:link href="` + seo.EscapeXML(ch.Link) + `/feed.xml" rel="self" type="application/rss+xml" />` + "\n")
	if ch.Copyright != "" {
		b.WriteString("    <copyright>" + seo.EscapeXML(ch.Copyright) + "</copyright>\n")
	}
	if ch.ManagingEditor != "" {
		b.WriteString("    <managingEditor>" + seo.EscapeXML(ch.ManagingEditor) + "</managingEditor>\n")
	}
	if ch.WebMaster != "" {
		b.WriteString("    <webMaster>" + seo.EscapeXML(ch.WebMaster) + "</webMaster>\n")
	}
	for _, item := range ch.Items {
		writeItem(&b, item)
	}
	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")
	return b.String()
}

func writeItem(b *strings.Builder, item Item) {
	b.WriteString("    <item>\n")
	b.WriteString("      <title>" + seo.EscapeXML(item.Title) + "</title>\n")
	b.WriteString("      <description>" + seo.EscapeXML(item.Description) + "</description>\n")
	b.WriteString("      <link>" + seo.EscapeXML(item.Link) + "</link>\n")
	b.WriteString("      <pubDate>" + item.PubDate + "</pubDate>\n")
	b.WriteString(`      <guid isPermaLink="true">` + seo.EscapeXML(item.Guid) + "</guid>\n")
	if item.Author != "" {
		b.WriteString("      <author>" + seo.EscapeXML(item.Author) + "</author>\n")
	}
	b.WriteString("    </item>\n")
}
