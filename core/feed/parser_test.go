package feed

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssHeader = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
<title>The Biblical Man</title>
<link>https://thebiblicalman.substack.com</link>
<description>Essays</description>
`

const rssFooter = `</channel>
</rss>`

func rssItem(n int) string {
	return fmt.Sprintf(`<item>
<title>Post %d</title>
<link>https://thebiblicalman.substack.com/p/post-%d</link>
<pubDate>Mon, 03 Mar 2025 10:00:00 GMT</pubDate>
<description>Description %d</description>
</item>
`, n, n, n)
}

func rssFeed(items ...string) string {
	return rssHeader + strings.Join(items, "") + rssFooter
}

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = "word"
	}
	return strings.Join(w, " ")
}

func TestParser_FullItem(t *testing.T) {
	raw := rssFeed(`<item>
<title><![CDATA[  The Weight of Headship  ]]></title>
<link>https://thebiblicalman.substack.com/p/headship</link>
<pubDate>Mon, 03 Mar 2025 10:00:00 GMT</pubDate>
<category><![CDATA[Leadership]]></category>
<description><![CDATA[<p>Hello <b>World</b></p>]]></description>
<content:encoded><![CDATA[<p>Full body with <em>emphasis</em>.</p><p>Second paragraph.</p>]]></content:encoded>
</item>
`)

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "https://thebiblicalman.substack.com/p/headship", a.ID)
	assert.Equal(t, a.ID, a.SourceLink)
	assert.Equal(t, "The Weight of Headship", a.Title)
	assert.Equal(t, "Hello World...", a.Excerpt)
	assert.Equal(t, "Mar 3, 2025", a.PublishedDate)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, 2025, a.PublishedAt.Year())
	assert.Equal(t, "Leadership", a.Category)
	assert.Equal(t, "<p>Full body with <em>emphasis</em>.</p><p>Second paragraph.</p>", a.FullContentHTML)
	assert.Equal(t, 1, a.ReadTimeMinutes)
}

func TestParser_TitleKeepsEscapedMarkup(t *testing.T) {
	raw := rssFeed(`<item>
<title>Why &lt;Men&gt; Fail &amp; Rise</title>
<link>https://thebiblicalman.substack.com/p/why-men-fail</link>
<description>Body</description>
</item>
`)

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Why <Men> Fail & Rise", articles[0].Title)
}

func TestParser_KeepsFirstThreeInDocumentOrder(t *testing.T) {
	raw := rssFeed(rssItem(1), rssItem(2), rssItem(3), rssItem(4), rssItem(5))

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	for i, a := range articles {
		assert.Equal(t, fmt.Sprintf("Post %d", i+1), a.Title)
	}
}

func TestParser_FewerThanMax(t *testing.T) {
	for n := 0; n < 3; n++ {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			items := make([]string, n)
			for i := range items {
				items[i] = rssItem(i + 1)
			}
			articles, err := NewParser(3).Parse(rssFeed(items...))
			require.NoError(t, err)
			assert.Len(t, articles, n)
			assert.NotNil(t, articles)
		})
	}
}

func TestParser_DefaultMax(t *testing.T) {
	raw := rssFeed(rssItem(1), rssItem(2), rssItem(3), rssItem(4))

	articles, err := NewParser(0).Parse(raw)
	require.NoError(t, err)
	assert.Len(t, articles, DefaultMaxArticles)
}

func TestParser_MalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"this is not xml at all",
	}

	for _, raw := range inputs {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			articles, err := NewParser(3).Parse(raw)
			assert.NotNil(t, articles)
			assert.Empty(t, articles)
			assert.True(t, coreerrors.IsParse(err))
		})
	}
}

func TestParser_ExcerptUsesDescriptionOnly(t *testing.T) {
	raw := rssFeed(fmt.Sprintf(`<item>
<title>Long</title>
<link>https://example.com/long</link>
<description>Short summary</description>
<content:encoded><![CDATA[<p>%s</p>]]></content:encoded>
</item>
`, words(1000)))

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Short summary...", articles[0].Excerpt)
	assert.Equal(t, 5, articles[0].ReadTimeMinutes)
}

func TestParser_ExcerptTruncation(t *testing.T) {
	long := strings.Repeat("abcdefghij", 30)
	raw := rssFeed(fmt.Sprintf(`<item>
<title>Trunc</title>
<link>https://example.com/trunc</link>
<description>%s</description>
</item>
`, long))

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	excerpt := articles[0].Excerpt
	assert.Equal(t, 153, utf8.RuneCountInString(excerpt))
	assert.Equal(t, long[:150]+"...", excerpt)
}

func TestParser_NoDescription(t *testing.T) {
	raw := rssFeed(`<item>
<title>Bare</title>
<link>https://example.com/bare</link>
<content:encoded><![CDATA[<p>Only encoded content</p>]]></content:encoded>
</item>
`)

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "...", articles[0].Excerpt)
	assert.Equal(t, "<p>Only encoded content</p>", articles[0].FullContentHTML)
}

func TestParser_DescriptionIsFullContentWithoutEncoded(t *testing.T) {
	articles, err := NewParser(3).Parse(rssFeed(rssItem(1)))
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Description 1", articles[0].FullContentHTML)
}

func TestParser_Dates(t *testing.T) {
	tests := []struct {
		pubDate  string
		expected string
	}{
		{"Mon, 03 Mar 2025 10:00:00 GMT", "Mar 3, 2025"},
		{"Tue, 10 Dec 2024 08:30:00 +0000", "Dec 10, 2024"},
		{"not-a-date", domain.RecentDate},
		{"", domain.RecentDate},
	}

	for _, tt := range tests {
		t.Run(tt.pubDate, func(t *testing.T) {
			raw := rssFeed(fmt.Sprintf(`<item>
<title>Dated</title>
<link>https://example.com/dated</link>
<pubDate>%s</pubDate>
</item>
`, tt.pubDate))

			articles, err := NewParser(3).Parse(raw)
			require.NoError(t, err)
			require.Len(t, articles, 1)
			assert.Equal(t, tt.expected, articles[0].PublishedDate)
			if tt.expected == domain.RecentDate {
				assert.Nil(t, articles[0].PublishedAt)
			}
		})
	}
}

func TestParser_DefaultCategory(t *testing.T) {
	articles, err := NewParser(3).Parse(rssFeed(rssItem(1)))
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, domain.DefaultCategory, articles[0].Category)
}

func TestParser_SkipsItemsWithoutLinkOrTitle(t *testing.T) {
	raw := rssFeed(
		`<item><title>No link</title></item>`,
		`<item><link>https://example.com/untitled</link></item>`,
		rssItem(3),
	)

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Post 3", articles[0].Title)
}

func TestParser_DuplicateLinksKept(t *testing.T) {
	raw := rssFeed(rssItem(1), rssItem(1))

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, articles[0].ID, articles[1].ID)
}

func TestParser_Atom(t *testing.T) {
	raw := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>Atom Feed</title>
<entry>
<title>Atom Entry</title>
<link rel="alternate" href="https://example.com/atom-entry"/>
<id>urn:uuid:1</id>
<published>2024-06-01T12:00:00Z</published>
<updated>2024-06-01T12:00:00Z</updated>
<summary>Atom summary</summary>
<content type="html">&lt;p&gt;Atom body&lt;/p&gt;</content>
</entry>
</feed>`

	articles, err := NewParser(3).Parse(raw)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "https://example.com/atom-entry", a.ID)
	assert.Equal(t, "Atom summary...", a.Excerpt)
	assert.Contains(t, a.FullContentHTML, "Atom body")
	assert.Equal(t, "Jun 1, 2024", a.PublishedDate)
}

func TestReadTimeMinutes(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{"empty", "", 1},
		{"few words", "<p>one two</p><p>three</p>", 1},
		{"exactly 200", "<p>" + words(200) + "</p>", 1},
		{"201 words", "<p>" + words(201) + "</p>", 2},
		{"401 words", words(401), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadTimeMinutes(tt.html))
		})
	}
}
