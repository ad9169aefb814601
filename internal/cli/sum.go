package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.dw1.io/compacthash/internal/digestcache"
	"go.dw1.io/compacthash/internal/pattern"
)

func addInputFlags(flags *pflag.FlagSet) {
	flags.BoolP("recursive", "r", false, "Hash files under directory arguments.")
	flags.StringSlice("include", nil, "Only hash walked paths matching this regex (repeatable).")
	flags.StringSlice("exclude", nil, "Skip walked paths matching this regex (repeatable).")
	flags.Bool("cache", false, "Reuse digests of unchanged files across runs.")
	flags.String("cache-file", "", "Digest cache location (default: user cache dir).")
}

// digester builds a digester for words output words from the resolved
// configuration. The returned function flushes the digest cache.
func (c *command) digester(words int) (*digester, func(), error) {
	seed, err := c.seed()
	if err != nil {
		return nil, nil, err
	}

	filter, err := pattern.NewFilter(c.v.GetStringSlice("include"), c.v.GetStringSlice("exclude"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	d := &digester{seed: seed, words: words, filter: filter, log: c.log}
	done := func() {}

	if c.v.GetBool("cache") {
		file := c.v.GetString("cache-file")
		if file == "" {
			if file, err = digestcache.DefaultPath(); err != nil {
				c.log.Warn("digest cache disabled", "error", err)
				return d, done, nil
			}
		}

		d.cache = digestcache.Open(file, digestcache.DefaultEntries)
		done = func() {
			if err := d.cache.Save(); err != nil {
				c.log.Warn("saving digest cache", "file", file, "error", err)
			}
		}
	}

	return d, done, nil
}

func (c *command) runDigest(args []string, words int, format func(input) (record, error)) error {
	d, done, err := c.digester(words)
	if err != nil {
		return err
	}
	defer done()

	p := newPrinter(c.stdout, c.v.GetBool("json"))

	return d.each(c.stdin, args, c.v.GetBool("recursive"), func(in input) error {
		r, err := format(in)
		if err != nil {
			return err
		}
		r.Path, r.Size, r.Seed = in.path, in.size, hexSeed(d.seed)

		return p.print(r)
	})
}

func newSumCommand(c *command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [paths...]",
		Short: "Print the 64-bit digest of each input.",
		Long: `Print the 64-bit digest of each file, or of stdin when no path
(or "-") is given, in the form "<digest>  <path>".`,
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runDigest(args, 0, func(in input) (record, error) {
				return record{Words: hexWords(in.words)}, nil
			})
		},
	}
	addInputFlags(cmd.Flags())

	return cmd
}

func newManyCommand(c *command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "many [paths...]",
		Short: "Print several independent 64-bit digest words per input.",
		RunE: func(_ *cobra.Command, args []string) error {
			words, err := c.positiveInt("words")
			if err != nil {
				return err
			}

			return c.runDigest(args, words, func(in input) (record, error) {
				return record{Words: hexWords(in.words)}, nil
			})
		},
	}
	flags := cmd.Flags()
	flags.IntP("words", "n", 4, "Number of 64-bit words per digest.")
	addInputFlags(flags)

	return cmd
}
