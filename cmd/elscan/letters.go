package main

import (
	"fmt"
	"strings"

	"github.com/poiesic/elscan/cipher"
	"github.com/poiesic/elscan/gematria"
	"github.com/poiesic/elscan/normalize"
	"github.com/urfave/cli/v2"
)

func gematriaCommand() *cli.Command {
	return &cli.Command{
		Name:      "gematria",
		Usage:     "Print the letter values of Hebrew words",
		ArgsUsage: "word...",
		Action:    gematriaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "Only this method (standard, ordinal, reduced)",
			},
		},
	}
}

func gematriaAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected at least one word")
	}
	methods := gematria.Methods
	if name := c.String("method"); name != "" {
		m, err := gematria.ParseMethod(name)
		if err != nil {
			return err
		}
		methods = []gematria.Method{m}
	}

	n := normalize.New(normalize.Hebrew())
	for _, word := range c.Args().Slice() {
		symbols := n.Symbols(word)
		parts := make([]string, len(methods))
		for i, m := range methods {
			parts[i] = fmt.Sprintf("%s %d", m, gematria.Calculate(symbols, m))
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", n.Normalize(word), strings.Join(parts, ", "))
	}
	return nil
}

func cipherCommand() *cli.Command {
	return &cli.Command{
		Name:      "cipher",
		Usage:     "Apply a letter substitution to Hebrew text",
		ArgsUsage: "text...",
		Action:    cipherAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Cipher to apply (atbash, albam)",
				Value:   "atbash",
			},
		},
	}
}

func cipherAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected text")
	}
	ci, err := cipher.ByName(strings.ToLower(c.String("name")))
	if err != nil {
		return err
	}
	text := normalize.StripMarks(strings.Join(c.Args().Slice(), " "))
	fmt.Fprintln(c.App.Writer, ci.ApplyString(text))
	return nil
}
