package siteinfo

import "strings"

// NormalizeText collapses every run of whitespace in s to a single
// space and trims the ends. Normalizing already-normalized text
// returns it unchanged.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
