// Package clockface renders the current instant as localized clock strings.
package clockface

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

const (
	DefaultLocale     = "tr-TR"
	DefaultTimeLayout = "15:04:05"
)

var dateLayouts = map[string]string{
	"tr": "2 January 2006 Monday",
	"de": "Monday, 2. January 2006",
	"fr": "Monday 2 January 2006",
	"ru": "Monday, 2 January 2006",
}

const fallbackDateLayout = "Monday, January 2, 2006"

// Reading is the rendered clock for one instant.
type Reading struct {
	Time string
	Date string
}

// Formatter renders instants for one locale. It holds no clock state.
type Formatter struct {
	locale     monday.Locale
	timeLayout string
	dateLayout string
}

// New builds a formatter. Empty layouts pick locale defaults.
func New(localeTag, timeLayout, dateLayout string) (*Formatter, error) {
	locale, err := ParseLocale(localeTag)
	if err != nil {
		return nil, err
	}
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout(locale)
	}
	return &Formatter{locale: locale, timeLayout: timeLayout, dateLayout: dateLayout}, nil
}

// Locale returns the resolved locale.
func (f *Formatter) Locale() monday.Locale {
	return f.locale
}

// Format renders both strings for now.
func (f *Formatter) Format(now time.Time) Reading {
	return Reading{
		Time: monday.Format(now, f.timeLayout, f.locale),
		Date: monday.Format(now, f.dateLayout, f.locale),
	}
}

// ParseLocale accepts BCP 47 tags ("tr-TR", "en") or underscore forms
// ("tr_TR") and resolves them to a supported locale.
func ParseLocale(tag string) (monday.Locale, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = DefaultLocale
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	base, _ := parsed.Base()
	// Region falls back to the most likely one, so "en" resolves to en_US.
	region, _ := parsed.Region()

	supported := SupportedLocales()
	want := monday.Locale(base.String() + "_" + region.String())
	for _, l := range supported {
		if l == want {
			return l, nil
		}
	}
	prefix := base.String() + "_"
	for _, l := range supported {
		if strings.HasPrefix(string(l), prefix) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", tag)
}

// SupportedLocales lists every locale the formatter can render, sorted.
func SupportedLocales() []monday.Locale {
	locales := monday.ListLocales()
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })
	return locales
}

// DefaultDateLayout returns the full-date layout used for a locale.
func DefaultDateLayout(locale monday.Locale) string {
	lang, _, _ := strings.Cut(string(locale), "_")
	if layout, ok := dateLayouts[lang]; ok {
		return layout
	}
	return fallbackDateLayout
}
