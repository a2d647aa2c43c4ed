// Package i18n translates user-facing strings.
//
// Messages live in a fixed [Catalog] keyed by language code. [Translate] is
// pure: it looks the key up in the requested language, then in
// [DefaultLang], and finally returns the key itself, substituting every
// {{name}} placeholder from params. A [Localizer] adds the persisted language
// selection on top.
package i18n

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultLang is the language used when nothing else is selected.
const DefaultLang = "ru"

// Messages maps message keys to text in one language.
type Messages map[string]string

// Catalog holds the messages of every supported language. Every table has a
// "langName" and a "flagCode" entry.
var Catalog = map[string]Messages{
	"ru": {
		"langName":         "Русский",
		"flagCode":         "ru",
		"langLabel":        "Язык:",
		"setupTitle":       "Загрузите изображение",
		"historyTitle":     "Выбрать из ранее собранных",
		"selectImage":      "Выберите изображение",
		"piecesCountLabel": "Количество деталей:",
		"gameTitle":        "Соберите пазл",
		"progress":         "Собрано: {{count}}/{{total}}",
		"resetBtn":         "Начать заново",
		"selectImageN":     "Выбрать изображение {{n}}",
		"savedN":           "Сохранённое {{n}}",
		"pieceLabel":       "Элемент пазла {{n}}",
		"victory":          "ТЫ МОЛОДЕЦ! 🎉",
		"pageTitle":        "Генератор пазлов",
		"keysHelp":         "мышь: перетащить · r: заново · n: новое изображение · q: выход",
		"historyEmpty":     "История пуста",
		"historyCleared":   "История очищена",
		"langSaved":        "Язык сохранён: {{name}}",
	},
	"en": {
		"langName":         "English",
		"flagCode":         "gb",
		"langLabel":        "Language:",
		"setupTitle":       "Upload image",
		"historyTitle":     "Choose from previously assembled",
		"selectImage":      "Select image",
		"piecesCountLabel": "Number of pieces:",
		"gameTitle":        "Assemble the puzzle",
		"progress":         "Assembled: {{count}}/{{total}}",
		"resetBtn":         "Start over",
		"selectImageN":     "Select image {{n}}",
		"savedN":           "Saved {{n}}",
		"pieceLabel":       "Puzzle piece {{n}}",
		"victory":          "WELL DONE! 🎉",
		"pageTitle":        "Puzzle Generator",
		"keysHelp":         "mouse: drag · r: restart · n: new image · q: quit",
		"historyEmpty":     "History is empty",
		"historyCleared":   "History cleared",
		"langSaved":        "Language saved: {{name}}",
	},
}

// Params holds placeholder values for Translate.
type Params map[string]any

// Languages returns the supported language codes, sorted.
func Languages() []string {
	codes := make([]string, 0, len(Catalog))
	for code := range Catalog {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Known reports whether code is a supported language.
func Known(code string) bool {
	_, ok := Catalog[code]
	return ok
}

// Translate returns the message key in lang with params substituted.
func Translate(lang, key string, params Params) string {
	msg, ok := Catalog[lang][key]
	if !ok {
		msg, ok = Catalog[DefaultLang][key]
	}
	if !ok {
		msg = key
	}
	for name, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", fmt.Sprint(v))
	}
	return msg
}

// Name returns the display name of lang.
func Name(lang string) string { return Translate(lang, "langName", nil) }

// Flag returns the flag emoji of lang, built from its flagCode entry.
func Flag(lang string) string {
	code := strings.ToUpper(Translate(lang, "flagCode", nil))
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}
