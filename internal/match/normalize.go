package match

import (
	"strings"
)

// accentReplacer folds the accented vowels that show up in provider
// feeds (Spanish team and player names) to their plain forms.
var accentReplacer = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

// Normalize canonicalizes a free-text team or player name for
// comparison: lower-case, trimmed, periods stripped (so "J. Sinner"
// and "J Sinner" compare equal), accented vowels folded, and inner
// whitespace collapsed. Empty input normalizes to "".
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ".", "")
	s = accentReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
