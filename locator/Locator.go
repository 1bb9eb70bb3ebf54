// Package locator maps review-tools findings back to positions in
// snapcraft.yaml. It does not parse YAML; it scans the manifest line by line
// with regular expressions and accepts the loss of precision that comes with
// that.
package locator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reaandrew/snapreview/core"
)

var indented = regexp.MustCompile(`^\s+`)

// optionallyQuoted matches expr either bare or wrapped in a pair of double
// quotes. RE2 has no backreferences, so the symmetric quote is spelled out.
func optionallyQuoted(expr string) string {
	return fmt.Sprintf(`(?:"(?:%s)"|(?:%s))`, expr, expr)
}

// LocateKeyValue returns the first line holding a top level "key: value"
// pair whose value matches valuePattern. The column is always 0.
func LocateKeyValue(lines []string, key, valuePattern string) core.Position {
	re, err := regexp.Compile(fmt.Sprintf(`^%s:\s*%s$`, regexp.QuoteMeta(key), optionallyQuoted(valuePattern)))
	if err != nil {
		return core.NotFound
	}
	for i, line := range lines {
		if re.MatchString(line) {
			return core.Position{Line: i, Col: 0}
		}
	}
	return core.NotFound
}

// LocateListItem finds the entry of the sectionKey mapping (plugs or slots)
// that declares "interface: itemName". The search starts at the section
// header and stops at the first line that is not indented. When the header
// is found but the entry is not, the header line is returned.
func LocateListItem(lines []string, sectionKey, itemName string) core.Position {
	key := optionallyQuoted(regexp.QuoteMeta(sectionKey))
	keyRe := regexp.MustCompile(fmt.Sprintf(`(?:^%s:|[{,]\s*%s:)`, key, key))

	iface := optionallyQuoted("interface")
	item := optionallyQuoted(regexp.QuoteMeta(itemName))
	itemRe := regexp.MustCompile(fmt.Sprintf(`(?:^\s+%s\s*:\s*%s|[{,]\s*%s\s*:\s*%s)`, iface, item, iface, item))

	header := -1
	for i, line := range lines {
		if keyRe.MatchString(line) {
			header = i
			break
		}
	}
	if header < 0 {
		return core.NotFound
	}

	for i := header; i < len(lines); i++ {
		if i > header && !indented.MatchString(lines[i]) {
			break
		}
		loc := itemRe.FindStringIndex(lines[i])
		if loc == nil {
			continue
		}
		return core.Position{Line: i, Col: skipDelimiters(lines[i], loc[0])}
	}

	return core.Position{Line: header, Col: 0}
}

// skipDelimiters moves col past any whitespace or flow mapping punctuation
// so it lands on the interface key itself.
func skipDelimiters(line string, col int) int {
	for col < len(line) && strings.ContainsRune(" \t,{", rune(line[col])) {
		col++
	}
	return col
}
