package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/domain"
)

func FormatPreferences(p domain.UserPreferences) string {
	interests := Dim("none")
	if len(p.Interests) > 0 {
		tags := make([]string, len(p.Interests))
		for i, t := range p.Interests {
			tags[i] = StylePurple.Render("#" + t)
		}
		interests = strings.Join(tags, " ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("Wake up   "), StyleBold.Render(p.WakeUpTime))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Sleep     "), StyleBold.Render(p.SleepTime))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Focus     "), StyleYellow.Render(string(p.FocusTime)))
	fmt.Fprintf(&b, "%s  %s", Dim("Interests "), interests)
	return RenderBox("Preferences", b.String())
}
