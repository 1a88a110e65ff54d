package scraper

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// DefaultCharLimit is the maximum tail of stripped page text kept per
// history page. The oldest entries are at the top of the page, so the
// tail holds the recent ones.
const DefaultCharLimit = 50000

// Client fetches history pages from the source site and reduces them to
// newline-separated plain text.
type Client struct {
	http      *resty.Client
	charLimit int
}

// NewClient creates a source-site client with a bounded request timeout
// and a fixed User-Agent. charLimit <= 0 uses DefaultCharLimit.
func NewClient(timeout time.Duration, userAgent string, charLimit int) *Client {
	if charLimit <= 0 {
		charLimit = DefaultCharLimit
	}
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &Client{http: c, charLimit: charLimit}
}

// FetchHistoryText performs one GET and returns the tail of the page's
// visible text, one trimmed line per text node. Transport errors,
// timeouts and non-2xx responses are returned as errors; the caller
// decides whether they are fatal to the run.
func (c *Client) FetchHistoryText(ctx context.Context, url string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", url, err)
	}

	text := visibleText(doc)
	if len(text) > c.charLimit {
		// The limit counts bytes; move the cut forward to the next rune
		// start so a multi-byte character is never split.
		cut := len(text) - c.charLimit
		for cut < len(text) && !utf8.RuneStart(text[cut]) {
			cut++
		}
		text = text[cut:]
	}
	return text, nil
}

// visibleText walks the document and joins every non-blank text node
// with newlines, skipping script and style subtrees.
func visibleText(doc *goquery.Document) string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			for _, raw := range strings.Split(n.Data, "\n") {
				if line := strings.TrimSpace(raw); line != "" {
					lines = append(lines, line)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(lines, "\n")
}
