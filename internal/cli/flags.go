package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// noFlagsSet reports whether the user passed none of the local flags.
func noFlagsSet(fs *pflag.FlagSet) bool {
	set := false
	fs.Visit(func(*pflag.Flag) { set = true })
	return !set
}

// changedOr returns the flag's value when it was passed, else fallback.
func changedOr(fs *pflag.FlagSet, name, fallback string) string {
	if f := fs.Lookup(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return fallback
}

// splitTags splits a comma-separated flag value into trimmed tags.
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
