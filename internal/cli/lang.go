package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/i18n"
)

// langCommand creates the command that shows or selects the language.
func (c *CLI) langCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "lang [code]",
		Short:             "Show or select the interface language",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeLang,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := c.newStore()
			defer store.Close()
			loc := c.newLocalizer(store)

			if len(args) == 0 {
				current := loc.Lang(ctx)
				for _, code := range i18n.Languages() {
					marker := "  "
					if code == current {
						marker = StyleHighlight.Render(iconInfo) + " "
					}
					fmt.Printf("%s%s %s %s\n", marker, i18n.Flag(code), StyleValue.Render(code), StyleDim.Render(i18n.Name(code)))
				}
				return nil
			}

			code, err := selectLang(ctx, loc, args[0])
			if err != nil {
				return err
			}
			printSuccess("%s", i18n.Translate(code, "langSaved", i18n.Params{"name": i18n.Name(code)}))
			return nil
		},
	}
}

// selectLang resolves arg to a supported language, by code or by locale, and
// stores it.
func selectLang(ctx context.Context, loc *i18n.Localizer, arg string) (string, error) {
	code := strings.ToLower(arg)
	if !i18n.Known(code) {
		if matched, ok := i18n.Match(arg); ok {
			code = matched
		}
	}
	if !loc.SetLang(ctx, code) {
		return "", errors.New(errors.ErrCodeInvalidLanguage, "unknown language %q (available: %s)", arg, strings.Join(i18n.Languages(), ", "))
	}
	return code, nil
}
