package dict

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/matzehuels/ladder/pkg/errors"
)

// Dictionary is an immutable list of distinct words in first-seen order.
// The zero value is an empty dictionary.
type Dictionary struct {
	words []string
	seen  map[string]struct{}

	fpOnce sync.Once
	fp     string
}

// New builds a Dictionary from words. Duplicates collapse to their first
// occurrence and empty strings are dropped.
func New(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, 0, len(words)),
		seen:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		d.add(w)
	}
	return d
}

func (d *Dictionary) add(w string) {
	if w == "" {
		return
	}
	if _, dup := d.seen[w]; dup {
		return
	}
	d.seen[w] = struct{}{}
	d.words = append(d.words, w)
}

// Load reads a whitespace-separated word list from r.
func Load(r io.Reader) (*Dictionary, error) {
	d := New(nil)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read word list")
	}
	return d, nil
}

// LoadFile reads a word list from path. The path "-" reads from stdin.
func LoadFile(path string) (*Dictionary, error) {
	if path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dictionary %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open dictionary %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns a copy of the words in first-seen order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.words)
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.seen[w]
	return ok
}

// Fingerprint returns a SHA-256 hex digest of the words in order, computed
// once per dictionary. Each word is terminated by a newline so that
// ["ab","c"] and ["a","bc"] differ. A nil dictionary hashes like an empty one.
func (d *Dictionary) Fingerprint() string {
	if d == nil {
		return hashWords(nil)
	}
	d.fpOnce.Do(func() { d.fp = hashWords(d.words) })
	return d.fp
}

func hashWords(words []string) string {
	h := sha256.New()
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Merge returns a new dictionary holding the words of d followed by the words
// of other that d does not already contain.
func (d *Dictionary) Merge(other *Dictionary) *Dictionary {
	out := New(d.Words())
	for _, w := range other.Words() {
		out.add(w)
	}
	return out
}

// Index builds a fresh search index over the words of the given length.
func (d *Dictionary) Index(length int) *Index {
	var words []string
	if d != nil {
		words = d.words
	}
	return newIndex(words, length)
}
