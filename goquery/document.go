// Package goquery implements grader.Document on top of goquery and cascadia.
package goquery

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/grader"
	"golang.org/x/net/html/charset"
)

// Ensure Document implements grader.Document at compile time.
var _ grader.Document = (*Document)(nil)

// Document is a parsed HTML page.
// A Document is never modified after construction and is safe for
// concurrent queries.
type Document struct {
	doc *goquery.Document
}

// FromReader parses HTML read from r.
// A UTF-8 byte order mark is dropped and valid UTF-8 is used as is. Anything else is decoded using the byte order
// mark or <meta charset> declaration, falling back to windows-1252.
func FromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data, err = decode(data)
	if err != nil {
		return nil, grader.Errorf(grader.EINVALID, "failed to decode HTML: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, grader.Errorf(grader.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

func decode(data []byte) ([]byte, error) {
	// A leading BOM would otherwise be parsed as body text, pushing <head>
	// content into <body>.
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	e, _, _ := charset.DetermineEncoding(data, "")
	return e.NewDecoder().Bytes(data)
}

// FromString parses an HTML string.
func FromString(html string) (*Document, error) {
	return FromReader(strings.NewReader(html))
}

// FromFile parses the HTML file at path.
// Returns ENOTFOUND if the file does not exist.
func FromFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, grader.Errorf(grader.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromReader(f)
}

// FromRemote fetches url with fetcher and parses the returned HTML.
// Returns EFETCH if the page cannot be retrieved.
func FromRemote(ctx context.Context, fetcher grader.Fetcher, url string) (*Document, error) {
	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		if grader.ErrorCode(err) == grader.EFETCH {
			return nil, err
		}
		return nil, grader.Errorf(grader.EFETCH, "fetching %s: %v", url, err)
	}
	return FromString(html)
}

// Count returns the number of elements matching selector.
// The selector is compiled up front because goquery treats an invalid
// selector as one that matches nothing.
func (d *Document) Count(selector string) (int, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0, grader.Errorf(grader.ESELECTOR, "invalid selector %q: %v", selector, err)
	}
	return d.doc.FindMatcher(sel).Length(), nil
}
