package locales

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize converts a user supplied locale code into the canonical
// language_TERRITORY form. POSIX codes ("fr_FR.UTF-8", "de_DE@euro") and
// BCP 47 tags ("fr-FR", "sr-Latn-RS") are both accepted; a script subtag is
// dropped. Codes that do not parse are returned trimmed but otherwise as is.
func Normalize(code string) string {
	s := strings.TrimSpace(code)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(strings.ReplaceAll(s, "_", "-"), "-")
	if s == "" {
		return ""
	}

	tag, err := language.Parse(s)
	if err != nil {
		return strings.TrimSpace(code)
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf != language.Exact {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
