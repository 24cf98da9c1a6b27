package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/wordladder/pkg/errors"
)

// maxLineSize caps a single dictionary line. Longer lines fail the read.
const maxLineSize = 1 << 20

// Options controls how lines become words.
type Options struct {
	// FoldCase upper-cases every word.
	FoldCase bool
	// Length keeps only words of this many runes. Zero keeps all words.
	Length int
}

// Stats describes what a read kept and dropped.
type Stats struct {
	Lines      int // lines read, including blanks and comments
	Words      int // distinct words kept
	Duplicates int // repeated words dropped
	Skipped    int // blank, comment, invalid UTF-8 and wrong-length lines dropped
}

// Dictionary is a de-duplicated word list in first-seen order.
type Dictionary struct {
	Words []string
	Stats Stats
}

// Read decodes a word list from r. Read does not close r.
func Read(r io.Reader, opts Options) (*Dictionary, error) {
	d := &Dictionary{}
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		d.Stats.Lines++
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") || !utf8.ValidString(w) {
			d.Stats.Skipped++
			continue
		}
		if opts.FoldCase {
			w = strings.ToUpper(w)
		}
		if opts.Length > 0 && utf8.RuneCountInString(w) != opts.Length {
			d.Stats.Skipped++
			continue
		}
		if _, dup := seen[w]; dup {
			d.Stats.Duplicates++
			continue
		}
		seen[w] = struct{}{}
		d.Words = append(d.Words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read dictionary line %d", d.Stats.Lines+1)
	}
	d.Stats.Words = len(d.Words)
	return d, nil
}

// ReadFile reads a word list from path.
// A missing file is reported with code FILE_NOT_FOUND.
func ReadFile(path string, opts Options) (*Dictionary, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dictionary %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open dictionary %s", path)
	}
	defer f.Close()
	return Read(f, opts)
}
