package pron

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPhone = errors.New("unknown ARPAbet phone")

var arpabet = map[string]string{
	"AA": "ɑ",
	"AE": "æ",
	"AH": "ə",
	"AO": "ɔ",
	"AW": "aʊ",
	"AY": "aɪ",
	"B":  "b",
	"CH": "ʧ",
	"D":  "d",
	"DH": "ð",
	"EH": "ɛ",
	"ER": "ər",
	"EY": "eɪ",
	"F":  "f",
	"G":  "g",
	"HH": "h",
	"IH": "ɪ",
	"IY": "i",
	"JH": "ʤ",
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "ŋ",
	"OW": "oʊ",
	"OY": "ɔɪ",
	"P":  "p",
	"R":  "r",
	"S":  "s",
	"SH": "ʃ",
	"T":  "t",
	"TH": "θ",
	"UH": "ʊ",
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "ʒ",
}

// stressMarks covers ARPAbet lexical stress digits and the IPA primary and
// secondary stress marks.
var stressMarks = strings.NewReplacer(
	"0", "", "1", "", "2", "",
	"ˈ", "", "ˌ", "",
)

// StripStress removes stress markers from an ARPAbet phone or an IPA string.
func StripStress(s string) string {
	return stressMarks.Replace(s)
}

// ToIPA transliterates a sequence of ARPAbet phones.
func ToIPA(phones []string) (string, error) {
	var b strings.Builder
	for _, ph := range phones {
		ipa, ok := arpabet[strings.ToUpper(StripStress(ph))]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownPhone, ph)
		}
		b.WriteString(ipa)
	}
	return b.String(), nil
}
