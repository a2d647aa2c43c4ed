package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supported = supportedTags()
	matcher   = language.NewMatcher(supported)
)

func supportedTags() []language.Tag {
	codes := Languages()
	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.MustParse(code)
	}
	return tags
}

// Match maps a BCP 47 tag or POSIX locale such as "en_US.UTF-8" onto a
// supported language. The base languages must agree, so a low-confidence
// guess such as "tlh" to "en" is no match.
func Match(locale string) (string, bool) {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	want, _ := tag.Base()
	got, _ := supported[idx].Base()
	if want != got {
		return "", false
	}
	return Languages()[idx], true
}

// Detect returns the language of the first locale variable that matches.
func Detect(getenv func(string) string) (string, bool) {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang, ok := Match(getenv(name)); ok {
			return lang, true
		}
	}
	return "", false
}
