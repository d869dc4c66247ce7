package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/forgeworks/forge/ent"
)

const maxBlockTextLength = 2900

// BuildHeldMessage creates Block Kit blocks for a ticket parked on hold.
func BuildHeldMessage(t *ent.Ticket, reason string) []goslack.Block {
	text := fmt.Sprintf(":warning: *Ticket on hold* — %s", t.Title)
	if reason != "" {
		text += fmt.Sprintf("\n*Reason:* %s", truncateForSlack(reason))
	}
	text += fmt.Sprintf("\nResume with `POST /api/v1/tickets/%s/resume` once addressed.", t.ID)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
		ticketContext(t),
	}
}

// BuildNeedsReviewMessage creates Block Kit blocks for a ticket whose
// verification did not pass and now waits on a human or replay decision.
func BuildNeedsReviewMessage(t *ent.Ticket, attempt int) []goslack.Block {
	text := fmt.Sprintf(":mag: *Ticket needs review* — %s\nVerification attempt %d did not pass; feedback is attached to the ticket.",
		t.Title, attempt)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
		ticketContext(t),
	}
}

func ticketContext(t *ent.Ticket) goslack.Block {
	return goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType,
			fmt.Sprintf("ticket `%s` · project `%s` · retries %d", t.ID, t.ProjectID, t.RetryCount),
			false, false),
	)
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
