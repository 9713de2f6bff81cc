package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)
	// The local part may itself contain underscores, so the prefix ends at
	// the millisecond stamp rather than at the second underscore.
	stampPrefix = regexp.MustCompile(`^.*?_\d{13}_`)
	shortPrefix = regexp.MustCompile(`^[^_]*_\d+_`)
)

// ImageFileName builds <local part>_<unix ms>_<original base><ext>, with the
// local part of the email reduced to [a-zA-Z0-9_].
func ImageFileName(email, original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	local := nonAlnum.ReplaceAllString(strings.SplitN(email, "@", 2)[0], "_")
	return fmt.Sprintf("%s_%d_%s%s", local, now.UnixMilli(), base, ext)
}

// DisplayName turns a stored file name back into something readable:
// "john_1700000000000_acme_hq.png" becomes "acme hq".
func DisplayName(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if loc := stampPrefix.FindStringIndex(name); loc != nil {
		name = name[loc[1]:]
	} else if loc := shortPrefix.FindStringIndex(name); loc != nil {
		name = name[loc[1]:]
	}
	return strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
}
