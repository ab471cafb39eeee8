package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when a language is outside the
// supported set, either as a Language value or as parsed input.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language identifies a report language.
// The zero value is not a valid language.
type Language int

const (
	// Spanish (castellano).
	Spanish Language = iota + 1

	// English.
	English

	// Portuguese.
	Portuguese
)

// supported lists languages in the order they are offered to users.
var supported = []Language{Spanish, English, Portuguese}

// Languages returns every supported language.
func Languages() []Language {
	langs := make([]Language, len(supported))
	copy(langs, supported)
	return langs
}

// Valid reports whether l belongs to the supported set.
func (l Language) Valid() bool {
	switch l {
	case Spanish, English, Portuguese:
		return true
	default:
		return false
	}
}

// String returns the BCP 47 base code of the language ("es", "en", "pt").
func (l Language) String() string {
	switch l {
	case Spanish:
		return "es"
	case English:
		return "en"
	case Portuguese:
		return "pt"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() (language.Tag, error) {
	switch l {
	case Spanish:
		return language.Spanish, nil
	case English:
		return language.English, nil
	case Portuguese:
		return language.Portuguese, nil
	default:
		return language.Und, fmt.Errorf("%w: %d", ErrUnsupportedLanguage, int(l))
	}
}

// languageNames are the spellings accepted in addition to BCP 47 tags.
var languageNames = map[string]Language{
	"spanish":    Spanish,
	"castellano": Spanish,
	"español":    Spanish,
	"espanol":    Spanish,
	"english":    English,
	"ingles":     English,
	"portuguese": Portuguese,
	"português":  Portuguese,
	"portugues":  Portuguese,
}

// matcher resolves arbitrary BCP 47 tags (en-US, pt-BR, es-419) to the
// closest supported language. Tag order must follow supported.
var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Portuguese,
})

// ParseLanguage converts a language name or BCP 47 tag to a Language.
// Tags that only loosely match a supported language are rejected so that,
// for example, "fr" does not silently fall back to Spanish.
func ParseLanguage(s string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return 0, fmt.Errorf("%w: empty language", ErrUnsupportedLanguage)
	}

	if l, ok := languageNames[key]; ok {
		return l, nil
	}

	tag, err := language.Parse(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}

	return supported[index], nil
}
