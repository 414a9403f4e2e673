// Package fake generates realistic-looking field values for response
// templates.
//
// Generators are looked up by name ("name", "email", "ipv4", "pyint", ...)
// and draw from the random.Source the Faker was built with, so a seeded
// source gives reproducible output.
package fake

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/value"
)

var (
	// ErrUnknownGenerator is returned for a name no generator is registered
	// under.
	ErrUnknownGenerator = errors.New("unknown generator")

	// ErrInvalidLocale is returned when a locale string is not a valid
	// language tag.
	ErrInvalidLocale = errors.New("invalid locale")
)

// supportedTags lists the locales with their own data. The first entry is
// the fallback for tags that match none of them.
var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Russian,
}

var localeMatcher = language.NewMatcher(supportedTags)

// Faker produces fake values for one locale. A Faker is not safe for
// concurrent use; build one per response.
type Faker struct {
	src    random.Source
	tag    language.Tag
	data   *localeData
	titler cases.Caser
}

// New creates a Faker for locale, which may use either "en_US" or "en-US"
// form. Valid tags without dedicated data fall back to American English.
func New(locale string, src random.Source) (*Faker, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, locale, err)
	}

	_, idx, _ := localeMatcher.Match(tag)
	matched := supportedTags[idx]

	return &Faker{
		src:    random.OrDefault(src),
		tag:    matched,
		data:   locales[matched],
		titler: cases.Title(matched),
	}, nil
}

// Locale returns the tag whose data the Faker uses.
func (f *Faker) Locale() language.Tag {
	return f.tag
}

// Generate runs the generator registered under name.
func (f *Faker) Generate(name string) (value.Value, error) {
	gen, ok := generators[name]
	if !ok {
		return value.Null(), fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return gen(f), nil
}

// Has reports whether a generator is registered under name.
func Has(name string) bool {
	_, ok := generators[name]
	return ok
}

// Names returns every generator name, sorted.
func Names() []string {
	out := make([]string, 0, len(generators))
	for name := range generators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (f *Faker) pick(items []string) string {
	return items[random.Choice(f.src, len(items))]
}

func (f *Faker) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return f.src.IntN(n)
}

// between returns an int in [lo, hi].
func (f *Faker) between(lo, hi int) int {
	return lo + f.intn(hi-lo+1)
}

// digits expands a pattern where every '#' becomes a random digit.
func (f *Faker) digits(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '#' {
			sb.WriteByte(byte('0' + f.intn(10)))
			continue
		}
		sb.WriteByte(pattern[i])
	}
	return sb.String()
}

// Read fills p with random bytes from the Faker's source. It lets uuid and
// similar byte-oriented generators follow a seeded source.
func (f *Faker) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(f.intn(256))
	}
	return len(p), nil
}
