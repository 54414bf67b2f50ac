// Package corpus loads source texts and concatenates them into one stream.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/normalize"
)

// ErrNoText is returned when none of the requested books could be loaded.
var ErrNoText = errors.New("no text loaded")

// TanakhBooks lists the Sefaria export file names in canonical order.
var TanakhBooks = []string{
	// Torah
	"genesis", "exodus", "leviticus", "numbers", "deuteronomy",
	// Nevi'im
	"joshua", "judges", "i_samuel", "ii_samuel", "i_kings", "ii_kings",
	"isaiah", "jeremiah", "ezekiel", "hosea", "joel", "amos", "obadiah",
	"jonah", "micah", "nahum", "habakkuk", "zephaniah", "haggai",
	"zechariah", "malachi",
	// Ketuvim
	"psalms", "proverbs", "job", "song_of_songs", "ruth", "lamentations",
	"ecclesiastes", "esther", "daniel", "ezra", "nehemiah",
	"i_chronicles", "ii_chronicles",
}

// TorahBooks is the first five entries of TanakhBooks.
var TorahBooks = TanakhBooks[:5]

// BookPaths returns dir/<name>.json for every name.
func BookPaths(dir string, names []string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name+".json")
	}
	return paths
}

// Book records where one source file landed in the combined stream.
type Book struct {
	Path   string
	Offset int // Index of the book's first symbol
	Len    int
	Verses int
}

// Corpus is a normalized stream with the books it was built from.
type Corpus struct {
	Stream *core.Stream
	Books  []Book
}

// Locate returns the book containing stream index i.
func (c *Corpus) Locate(i int) (Book, bool) {
	n := sort.Search(len(c.Books), func(j int) bool {
		return c.Books[j].Offset+c.Books[j].Len > i
	})
	if n == len(c.Books) || i < c.Books[n].Offset {
		return Book{}, false
	}
	return c.Books[n], true
}

// Loader reads source files through a normalizer.
type Loader struct {
	normalizer *normalize.Normalizer
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithNormalizer sets the normalizer. Default is the Hebrew alphabet.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(l *Loader) {
		if n != nil {
			l.normalizer = n
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		normalizer: normalize.New(nil),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadText normalizes one plain text file.
func (l *Loader) LoadText(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	symbols := l.normalizer.Symbols(string(data))
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoText, path)
	}
	l.logger.Info("loaded text", "path", path, "symbols", len(symbols))
	return &Corpus{
		Stream: core.NewStream(symbols),
		Books:  []Book{{Path: path, Len: len(symbols)}},
	}, nil
}

// LoadBooks reads Sefaria-style JSON books in order and concatenates their
// verses. Missing or malformed books are logged and skipped.
func (l *Loader) LoadBooks(paths ...string) (*Corpus, error) {
	var (
		symbols []core.Symbol
		books   []Book
	)
	for _, path := range paths {
		verses, err := readSefariaBook(path)
		if err != nil {
			l.logger.Warn("skipping book", "path", path, "error", err)
			continue
		}
		book := Book{Path: path, Offset: len(symbols), Verses: len(verses)}
		for _, verse := range verses {
			symbols = append(symbols, l.normalizer.Symbols(verse)...)
		}
		book.Len = len(symbols) - book.Offset
		books = append(books, book)
		l.logger.Debug("loaded book", "path", path, "verses", book.Verses, "symbols", book.Len)
	}
	if len(symbols) == 0 {
		return nil, ErrNoText
	}
	l.logger.Info("loaded corpus", "books", len(books), "symbols", len(symbols))
	return &Corpus{Stream: core.NewStream(symbols), Books: books}, nil
}

// sefariaBook is the export layout: text is a list of chapters, each a list of verses.
type sefariaBook struct {
	Text []any `json:"text"`
}

func readSefariaBook(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var book sefariaBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, err
	}
	var verses []string
	for _, chapter := range book.Text {
		// Entries that are not lists of strings are ignored.
		list, ok := chapter.([]any)
		if !ok {
			continue
		}
		for _, verse := range list {
			if s, ok := verse.(string); ok {
				verses = append(verses, s)
			}
		}
	}
	return verses, nil
}
