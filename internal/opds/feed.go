// Package opds renders books as an OPDS 1.x acquisition feed.
package opds

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/opds-community/libopds2-go/opds1"

	"audiobookify/internal/types"
)

const (
	ContentType = "application/atom+xml;profile=opds-catalog;kind=acquisition"

	feedId    = "urn:audiobookify:catalog"
	feedTitle = "Audiobookify"

	linkRelSelf      = "self"
	linkRelAlternate = "alternate"
	linkTypeJson     = "application/json"

	contentTypeText = "text"

	bookIdPrefix   = "tag:book:"
	bookIdTemplate = bookIdPrefix + "%v"
)

// Set once, the catalog does not change while the process runs
var loadedAt = time.Now().UTC().Truncate(time.Second)

// BuildFeed makes one entry per book, keeping the order of bs.
// selfHref may be empty and bookHref may be nil, the matching links are then left out.
func BuildFeed(bs []types.Book, selfHref string, bookHref func(id int) string, l *slog.Logger) *opds1.Feed {
	feed := &opds1.Feed{
		ID:           feedId,
		Title:        feedTitle,
		Updated:      loadedAt,
		TotalResults: len(bs),
		ItemsPerPage: len(bs),
		Entries:      make([]opds1.Entry, 0, len(bs)),
	}

	if selfHref != "" {
		feed.Links = append(feed.Links, opds1.Link{
			Rel:      linkRelSelf,
			Href:     selfHref,
			TypeLink: ContentType,
		})
	}

	for _, b := range bs {
		entry := opds1.Entry{
			ID:     fmt.Sprintf(bookIdTemplate, b.Id),
			Title:  removeDisallowedCodepoints(b.Title, b.Id, l),
			Author: []opds1.Author{{Name: removeDisallowedCodepoints(b.Author, b.Id, l)}},
		}
		entry.Content.Content = removeDisallowedCodepoints(b.Description, b.Id, l)
		entry.Content.ContentType = contentTypeText

		if bookHref != nil {
			entry.Links = append(entry.Links, opds1.Link{
				Rel:      linkRelAlternate,
				Href:     bookHref(b.Id),
				TypeLink: linkTypeJson,
			})
		}

		feed.Entries = append(feed.Entries, entry)
	}

	return feed
}

// opds1 types marshal every field, prices and counts included, so output goes
// through these with only what an acquisition feed of plain books needs.
type atomFeed struct {
	XMLName      xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	ID           string      `xml:"id"`
	Title        string      `xml:"title"`
	Updated      string      `xml:"updated"`
	TotalResults int         `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	ItemsPerPage int         `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage"`
	Links        []atomLink  `xml:"link"`
	Entries      []atomEntry `xml:"entry"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr,omitempty"`
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr,omitempty"`
}

type atomAuthor struct {
	Name string `xml:"name"`
	URI  string `xml:"uri,omitempty"`
}

type atomText struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

type atomEntry struct {
	ID      string       `xml:"id"`
	Title   string       `xml:"title"`
	Updated string       `xml:"updated"`
	Authors []atomAuthor `xml:"author"`
	Content *atomText    `xml:"content,omitempty"`
	Links   []atomLink   `xml:"link"`
}

func Marshal(feed *opds1.Feed) ([]byte, error) {
	updated := feed.Updated
	if updated.IsZero() {
		updated = loadedAt
	}
	stamp := updated.UTC().Format(time.RFC3339)

	out := atomFeed{
		ID:           feed.ID,
		Title:        feed.Title,
		Updated:      stamp,
		TotalResults: feed.TotalResults,
		ItemsPerPage: feed.ItemsPerPage,
		Links:        convertLinks(feed.Links),
		Entries:      make([]atomEntry, 0, len(feed.Entries)),
	}

	for _, entry := range feed.Entries {
		e := atomEntry{
			ID:      entry.ID,
			Title:   entry.Title,
			Updated: stamp,
			Links:   convertLinks(entry.Links),
		}

		for _, a := range entry.Author {
			e.Authors = append(e.Authors, atomAuthor{Name: a.Name, URI: a.URI})
		}

		if entry.Content.Content != "" {
			ct := entry.Content.ContentType
			if ct == "" {
				ct = contentTypeText
			}
			e.Content = &atomText{Type: ct, Text: entry.Content.Content}
		}

		out.Entries = append(out.Entries, e)
	}

	bs, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling feed: %w", err)
	}

	return append([]byte(xml.Header), bs...), nil
}

func convertLinks(links []opds1.Link) []atomLink {
	if len(links) == 0 {
		return nil
	}

	ret := make([]atomLink, 0, len(links))
	for _, link := range links {
		ret = append(ret, atomLink{Rel: link.Rel, Href: link.Href, Type: link.TypeLink})
	}

	return ret
}

// BookId extracts the numeric id back from an entry id made by BuildFeed
func BookId(entryId string) (int, bool) {
	s, ok := strings.CutPrefix(strings.TrimSpace(entryId), bookIdPrefix)
	if !ok {
		return 0, false
	}

	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return id, true
}

// Descriptions are free text and may carry control characters XML can not represent
func removeDisallowedCodepoints(s string, bookId int, l *slog.Logger) string {
	if strings.IndexFunc(s, func(r rune) bool { return !isInCharacterRange(r) }) < 0 {
		return s
	}

	l.Warn("Removed invalid runes from feed text of book " + strconv.Itoa(bookId))

	return strings.Map(func(r rune) rune {
		if isInCharacterRange(r) {
			return r
		}
		return -1
	}, s)
}

// Decide whether the given rune is in the XML Character Range, per
// the Char production of https://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
