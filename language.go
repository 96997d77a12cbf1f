package replacet

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is the language and optional region namespace files are read for.
type Locale struct {
	Language string
	Region   string
}

// ParseLocale parses a locale such as "en", "en-US" or "en_GB". Of a list in the
// Accept-Language form, "en-GB,en;q=0.5", the first entry is used. A region that is only
// guessed from the language is left empty.
func ParseLocale(s string) (Locale, error) {
	entry, _, _ := strings.Cut(s, ",")
	entry, _, _ = strings.Cut(entry, ";")
	entry = strings.ReplaceAll(strings.TrimSpace(entry), "_", "-")
	if entry == "" {
		return Locale{}, fmt.Errorf("invalid locale %q", s)
	}

	tag, err := language.Parse(entry)
	if err != nil {
		return Locale{}, fmt.Errorf("parsing locale %q: %w", s, err)
	}

	base, conf := tag.Base()
	if conf != language.Exact {
		return Locale{}, fmt.Errorf("parsing locale %q: no exact language", s)
	}

	l := Locale{Language: base.String()}
	if region, conf := tag.Region(); conf == language.Exact {
		l.Region = region.String()
	}

	return l, nil
}

// String returns the directory form of the locale, e.g. "en-US".
func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}

	return l.Language + "-" + l.Region
}
