package formatter

import (
	"strings"

	"github.com/alexanderramin/zenith/internal/domain"
)

// FormatChatMessage renders one transcript entry with a speaker label.
// Fallback replies are dimmed so they read as stand-ins.
func FormatChatMessage(msg domain.ChatMessage) string {
	switch {
	case msg.Role == domain.RoleUser:
		return StyleBlue.Render("you") + Dim(" › ") + msg.Text
	case msg.Fallback:
		return StylePurple.Render("zenith") + Dim(" › ") + StyleItalic.Render(msg.Text)
	default:
		return StylePurple.Render("zenith") + Dim(" › ") + StyleFg.Render(msg.Text)
	}
}

func FormatTranscript(msgs []domain.ChatMessage) string {
	if len(msgs) == 0 {
		return Dim("No messages yet. Start with 'coach say <message>' or 'coach' in the shell.")
	}
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = FormatChatMessage(m)
	}
	return strings.Join(lines, "\n")
}

// FormatCoachWelcome renders the greeting shown when the chat opens.
func FormatCoachWelcome(welcome string) string {
	return RenderBox("Zenith Coach",
		StyleFg.Render(welcome)+"\n\n"+Dim("Type a message and press Enter. /quit to leave."))
}
