package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/poiesic/elscan/corpus"
	"github.com/poiesic/elscan/normalize"
	"github.com/urfave/cli/v2"
)

// inputFlags select the text to search.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Plain text file to search",
		},
		&cli.StringFlag{
			Name:  "books-dir",
			Usage: "Directory of Sefaria JSON books (<name>.json)",
		},
		&cli.StringSliceFlag{
			Name:  "books",
			Usage: "Book names to load from --books-dir, in order (default: the whole Tanakh; \"torah\" for the five books)",
		},
	}
}

func loadCorpus(c *cli.Context, n *normalize.Normalizer) (*corpus.Corpus, error) {
	loader := corpus.NewLoader(corpus.WithNormalizer(n), corpus.WithLogger(slog.Default()))

	input, dir := c.String("input"), c.String("books-dir")
	switch {
	case input != "" && dir != "":
		return nil, errors.New("--input and --books-dir are mutually exclusive")
	case input != "":
		return loader.LoadText(input)
	case dir != "":
		return loader.LoadBooks(corpus.BookPaths(dir, bookNames(c.StringSlice("books")))...)
	default:
		return nil, errors.New("one of --input or --books-dir is required")
	}
}

func bookNames(names []string) []string {
	switch {
	case len(names) == 0:
		return corpus.TanakhBooks
	case len(names) == 1 && strings.EqualFold(names[0], "torah"):
		return corpus.TorahBooks
	default:
		return names
	}
}

// bookLocator names the book holding a stream index.
func bookLocator(c *corpus.Corpus) func(int) string {
	return func(i int) string {
		b, ok := c.Locate(i)
		if !ok {
			return ""
		}
		return strings.TrimSuffix(filepath.Base(b.Path), filepath.Ext(b.Path))
	}
}

// parseTerm reads "name=text" or a bare text used as its own name.
func parseTerm(arg string) (name, text string, err error) {
	name, text, found := strings.Cut(arg, "=")
	if !found {
		text = name
	}
	name, text = strings.TrimSpace(name), strings.TrimSpace(text)
	if text == "" {
		return "", "", fmt.Errorf("term %q has no text", arg)
	}
	if name == "" {
		name = text
	}
	return name, text, nil
}
