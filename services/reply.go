package services

import "strings"

// DevisReplyHeader opens every formatted quote sent back to a chat.
const DevisReplyHeader = "📄 Devis – Calcul\n\n"

// Reply is the answer to a chat message.
type Reply struct {
	Text string
	// HasLinks is set when Text carries address links, so the caller can
	// disable link previews.
	HasLinks bool
}

// BuildReply decides how to answer a chat message. A message starting with
// the formatter's trigger (any message when the trigger is empty) gets the
// formatted quote; a message mentioning the trigger anywhere also gets the
// links of the addresses it contains. The zero Reply means no answer.
func BuildReply(message string, f Formatter) Reply {
	var parts []string
	var reply Reply

	if _, ok := CutTrigger(message, f.Trigger); ok || f.Trigger == "" {
		if formatted := f.Format(message); strings.TrimSpace(formatted) != "" {
			parts = append(parts, DevisReplyHeader+formatted)
		}
	}

	if f.Trigger == "" || strings.Contains(strings.ToLower(message), strings.ToLower(f.Trigger)) {
		if links := FormatAddressLinks(BuildAddressLinks(message)); links != "" {
			parts = append(parts, links)
			reply.HasLinks = true
		}
	}

	reply.Text = strings.Join(parts, "\n\n")
	return reply
}
