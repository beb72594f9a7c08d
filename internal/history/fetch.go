// apps/solver/internal/history/fetch.go
//
// Download and parse the published archive of past answers.
//
// Responsibilities:
//   - Fetch the archive page over HTTP with a browser User-Agent.
//   - Scrape the "All Wordle answers" list out of the page HTML.
//   - Apply the replay whitelist and return a sorted, upcased word list.
//
// The puzzle (almost) never repeats an answer, so knowing every past
// answer lets the solver drop them from the candidate pool up front.
// Screen scraping is brittle; every layout marker lives in one const
// block so a site redesign only ever touches those strings.

package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultURL is the archive page that tracks every past answer.
const DefaultURL = "https://www.rockpapershotgun.com/wordle-past-answers"

// defaultUserAgent is browser-shaped; the archive blocks obvious bots.
const defaultUserAgent = "Mozilla/5.0 (compatible; Chrome/120.0)"

// Layout markers for the archive page.
const (
	sectionHeader = "<h2>All Wordle answers</h2>"
	itemStart     = "<li>"
	itemEnd       = "</li>"
	listEnd       = "</ul>"
)

// Fetcher downloads the past-answers archive.
type Fetcher struct {
	Client *http.Client
	URL    string
	// Replay lists words to keep playable even though the archive has
	// them. Replaying a historic game needs its answer un-banned.
	Replay []string
}

// NewFetcher returns a Fetcher with the default URL and a 10s timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client: &http.Client{Timeout: 10 * time.Second},
		URL:    DefaultURL,
	}
}

// Fetch downloads the archive page and returns the sorted list of past
// answers, minus the replay whitelist.
func (f *Fetcher) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("history: build request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("history: fetch archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history: archive returned %s", resp.Status)
	}
	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("history: read archive: %w", err)
	}

	used, err := Parse(string(page), f.Replay)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", len(used)).Str("url", f.URL).Msg("archive fetched")
	return used, nil
}

// Parse scrapes the past-answers list out of the archive page HTML.
// It jumps to the answers header, walks the list items up to the closing
// list tag, keeps tokens opening with exactly five letters, upcases
// them, drops replay-listed words and returns the rest sorted ascending.
func Parse(page string, replay []string) ([]string, error) {
	at := strings.Index(page, sectionHeader)
	if at < 0 {
		return nil, errors.New("history: answers section not found in archive page")
	}
	section := page[at:]
	first := strings.Index(section, itemStart)
	if first < 0 {
		return nil, errors.New("history: no list items after answers header")
	}
	section = section[first:]
	if end := strings.Index(section, listEnd); end >= 0 {
		section = section[:end]
	}

	keep := make(map[string]struct{}, len(replay))
	for _, w := range replay {
		keep[strings.ToUpper(strings.TrimSpace(w))] = struct{}{}
	}

	var out []string
	for _, item := range strings.Split(section, itemStart)[1:] {
		cut := strings.Index(item, itemEnd)
		if cut < 0 {
			break
		}
		word, ok := itemWord(item[:cut])
		if !ok {
			continue
		}
		if _, replayed := keep[word]; replayed {
			log.Debug().Str("word", word).Msg("replay word kept playable")
			continue
		}
		out = append(out, word)
	}
	sort.Strings(out)
	return out, nil
}

// itemWord extracts the five-letter answer from one list item body,
// tolerating one level of inline markup (<li><strong>WORD</strong>).
func itemWord(body string) (string, bool) {
	const space = " \t\n\r\v"
	body = strings.TrimLeft(body, space)
	if strings.HasPrefix(body, "<") {
		if gt := strings.IndexByte(body, '>'); gt >= 0 {
			body = body[gt+1:]
		}
	}
	body = strings.TrimLeft(body, space)

	n := 0
	for n < len(body) && n < words.WordLength && isLetter(body[n]) {
		n++
	}
	if n != words.WordLength {
		return "", false
	}
	return strings.ToUpper(body[:n]), true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
