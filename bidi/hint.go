package bidi

import (
	"fmt"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// ParagraphDirectionHint tells a context how to determine the paragraph
// embedding level. The Auto variants apply rules P2 and P3, falling back to
// the named direction for paragraphs without strong characters.
type ParagraphDirectionHint int8

// Paragraph direction hints.
const (
	HintLeftToRight ParagraphDirectionHint = iota
	HintRightToLeft
	HintAutoLeftToRight
	HintAutoRightToLeft
)

var hintNames = [...]string{"LeftToRight", "RightToLeft", "AutoLeftToRight", "AutoRightToLeft"}

func (h ParagraphDirectionHint) String() string {
	if h < 0 || int(h) >= len(hintNames) {
		return fmt.Sprintf("ParagraphDirectionHint(%d)", int(h))
	}
	return hintNames[h]
}

// IsAuto is true for hints which let the paragraph text decide its direction.
func (h ParagraphDirectionHint) IsAuto() bool {
	return h == HintAutoLeftToRight || h == HintAutoRightToLeft
}

// Direction returns the explicit or fallback direction of a hint.
func (h ParagraphDirectionHint) Direction() Direction {
	if h == HintRightToLeft || h == HintAutoRightToLeft {
		return RightToLeft
	}
	return LeftToRight
}

// ParseHint returns the direction hint for a name as returned by
// ParagraphDirectionHint.String. Matching is case-insensitive.
func ParseHint(name string) (ParagraphDirectionHint, error) {
	name = strings.TrimSpace(name)
	for i, n := range hintNames {
		if strings.EqualFold(n, name) {
			return ParagraphDirectionHint(i), nil
		}
	}
	return HintAutoLeftToRight, fmt.Errorf("unknown paragraph direction hint %q", name)
}

// Scripts written from right to left (ISO 15924).
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Armi": true, "Avst": true, "Chrs": true,
	"Elym": true, "Hebr": true, "Hung": true, "Khar": true, "Lydi": true,
	"Mand": true, "Mani": true, "Mend": true, "Narb": true, "Nbat": true,
	"Nkoo": true, "Orkh": true, "Ougr": true, "Palm": true, "Phli": true,
	"Phnx": true, "Prti": true, "Rohg": true, "Samr": true, "Sarb": true,
	"Sogd": true, "Sogo": true, "Syrc": true, "Thaa": true, "Yezi": true,
}

// HintForLocale returns an automatic direction hint for an IETF locale tag,
// e.g. "he-IL". The fallback direction is right-to-left if the locale's
// (likely) script is written from right to left.
func HintForLocale(locale string) ParagraphDirectionHint {
	lang, err := language.Parse(locale)
	if err != nil {
		tracer().Debugf("cannot parse locale %q: %v", locale, err)
		return HintAutoLeftToRight
	}
	script, _ := lang.Script()
	if rtlScripts[script.String()] {
		return HintAutoRightToLeft
	}
	return HintAutoLeftToRight
}

// HintFromEnvironment returns an automatic direction hint suitable for the
// user's locale, as detected from the environment.
func HintFromEnvironment() ParagraphDirectionHint {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale, assuming left-to-right: %v", err)
		return HintAutoLeftToRight
	}
	tracer().Debugf("UAX#9 detected user locale %v", userLocale)
	return HintForLocale(userLocale)
}
