package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type commandEntry struct {
	path  string
	short string
}

// commandEntries flattens the visible command tree below root.
func commandEntries(root *cobra.Command) []commandEntry {
	var out []commandEntry
	var walk func(cmd *cobra.Command, prefix string)
	walk = func(cmd *cobra.Command, prefix string) {
		for _, c := range cmd.Commands() {
			if c.Hidden || !c.IsAvailableCommand() {
				continue
			}
			path := strings.TrimSpace(prefix + " " + c.Name())
			out = append(out, commandEntry{path: path, short: c.Short})
			walk(c, path)
		}
	}
	walk(root, "")
	return out
}

// fuzzyMatch returns up to n commands whose path or description contains
// any of the query terms, most hits first.
func fuzzyMatch(entries []commandEntry, query string, n int) []commandEntry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry commandEntry
		hits  int
	}
	var matches []scored
	for _, e := range entries {
		path, short := strings.ToLower(e.path), strings.ToLower(e.short)
		hits := 0
		for _, term := range terms {
			if strings.Contains(path, term) || strings.Contains(short, term) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{entry: e, hits: hits})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })

	out := make([]commandEntry, 0, n)
	for i := 0; i < len(matches) && i < n; i++ {
		out = append(out, matches[i].entry)
	}
	return out
}

// suggestAlternatives renders "did you mean" lines for an unknown command,
// or "" when nothing matches.
func suggestAlternatives(root *cobra.Command, input string) string {
	matches := fuzzyMatch(commandEntries(root), input, 3)
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Dim("Did you mean:"))
	for _, m := range matches {
		fmt.Fprintf(&b, "\n  %s  %s", formatter.StyleGreen.Render(m.path), formatter.Dim(m.short))
	}
	return b.String()
}
