package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"go.dw1.io/compacthash"
	"go.dw1.io/compacthash/internal/digestcache"
	"go.dw1.io/compacthash/internal/mmfile"
	"go.dw1.io/compacthash/internal/pattern"
)

const stdinName = "-"

// input is one hashed file or stream.
type input struct {
	path  string
	size  int64
	words []uint64
}

// digester hashes inputs. words == 0 selects the plain single-word digest;
// words >= 1 selects extended output with that many words.
type digester struct {
	seed   uint64
	words  int
	cache  *digestcache.Cache
	filter *pattern.Filter
	log    *slog.Logger
}

func (d *digester) sum(data []byte) []uint64 {
	if d.words == 0 {
		return []uint64{compacthash.Sum64WithSeed(data, d.seed)}
	}

	return compacthash.SumMany(data, d.words, d.seed)
}

func (d *digester) stream(r io.Reader) ([]uint64, int64, error) {
	if d.words == 0 {
		h := compacthash.NewWithSeed(d.seed)
		n, err := io.Copy(h, r)
		return []uint64{h.Sum64()}, n, err
	}

	e := compacthash.NewExtended(d.words, d.seed)
	n, err := io.Copy(e, r)

	return e.Words(), n, err
}

func (d *digester) file(path string) (input, error) {
	key, cacheable := "", false
	if d.cache != nil {
		key, cacheable = digestcache.Key(path, d.seed, d.words)
	}
	if cacheable {
		if words, ok := d.cache.Get(key); ok {
			info, err := os.Stat(path)
			if err != nil {
				return input{}, err
			}
			d.log.Debug("cache hit", "path", path)
			return input{path: path, size: info.Size(), words: words}, nil
		}
	}

	f, err := mmfile.Open(path)
	if err != nil {
		return input{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return input{}, err
	}

	in := input{path: path, size: info.Size()}
	if b := f.Bytes(); b != nil {
		d.log.Debug("hashing mapped file", "path", path, "size", len(b))
		in.words = d.sum(b)
	} else {
		d.log.Debug("hashing file stream", "path", path)
		if in.words, in.size, err = d.stream(f); err != nil {
			return input{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if cacheable {
		d.cache.Set(key, in.words)
	}

	return in, nil
}

// each hashes every path in order, descending into directories when
// recursive is set. Files found while walking are subject to the filter;
// explicitly named files are always hashed. "-" (or no paths) reads stdin.
func (d *digester) each(stdin io.Reader, paths []string, recursive bool, fn func(input) error) error {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}

	for _, p := range paths {
		if p == stdinName {
			words, n, err := d.stream(stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if err := fn(input{path: stdinName, size: n, words: words}); err != nil {
				return err
			}
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			in, err := d.file(p)
			if err != nil {
				return err
			}
			if err := fn(in); err != nil {
				return err
			}
			continue
		}

		if !recursive {
			return fmt.Errorf("%w: %s is a directory (use --recursive)", ErrUsage, p)
		}

		err = filepath.WalkDir(p, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !de.Type().IsRegular() {
				return nil
			}
			if !d.filter.Match(filepath.ToSlash(path)) {
				d.log.Debug("skipping filtered path", "path", path)
				return nil
			}

			in, err := d.file(path)
			if err != nil {
				return err
			}

			return fn(in)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func hexWords(words []uint64) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%016x", w)
	}

	return out
}

func hexSeed(seed uint64) string {
	return "0x" + strconv.FormatUint(seed, 16)
}
