// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	timelineMetaID = "timeline-meta"
	timelineID     = "timeline"
)

// parseTimeline extracts the surface metadata and the rendered entries of a
// timeline fragment.
//
// Metadata comes from the element with id="timeline-meta" (data-last-seen,
// data-page, data-limit, data-has-next). When the fragment has no meta element
// the data-last-seen of the id="timeline" container is used instead. Entries
// are elements carrying data-post-id; nested entries are not descended into.
func parseTimeline(r io.Reader) (models.TimelinePage, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return models.TimelinePage{}, err
	}

	var (
		page         models.TimelinePage
		metaFound    bool
		fallbackSeen string
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch attr(n, "id") {
			case timelineMetaID:
				page.Meta = readMeta(n)
				metaFound = true
			case timelineID:
				fallbackSeen = attr(n, "data-last-seen")
			}

			if postID := attr(n, "data-post-id"); postID != "" {
				page.Entries = append(page.Entries, models.FeedEntry{
					PostID: postID,
					Text:   collapsedText(n),
				})
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if !metaFound {
		page.Meta.LastSeen = fallbackSeen
	}

	return page, nil
}

func readMeta(n *html.Node) models.FeedMetadata {
	meta := models.FeedMetadata{LastSeen: attr(n, "data-last-seen")}
	meta.Page, _ = strconv.Atoi(attr(n, "data-page"))
	meta.Limit, _ = strconv.Atoi(attr(n, "data-limit"))

	switch strings.ToLower(attr(n, "data-has-next")) {
	case "true", "1", "yes":
		meta.HasNext = true
	}

	return meta
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func collapsedText(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}
