package encounter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// FormatJournal formats journal entries as plain text, one encounter per line
func FormatJournal(entries []domain.JournalEntry) string {
	if len(entries) == 0 {
		return "No encounters recorded.\n"
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(FormatEntry(e))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatEntry renders a single journal entry
func FormatEntry(e domain.JournalEntry) string {
	who := fmt.Sprintf("%s (%s)", e.ScavengerName, PolicyTitle(e.Policy))

	switch e.Encounter {
	case domain.EncounterTrade:
		return fmt.Sprintf("%s traded with %s: was offered %s, judged %s, %s. Holds %s",
			who, e.Counterparty, e.Other, e.Verdict, e.Outcome, e.Held)
	default:
		return fmt.Sprintf("%s explored: found %s, judged %s, %s. Holds %s, left %s",
			who, e.Other, e.Verdict, outcomeText(e.Outcome), e.Held, e.LeftBehind)
	}
}

// PolicyTitle renders a policy for people, e.g. "Risk Taking"
func PolicyTitle(p domain.Policy) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(p), "_", " "))
}

func outcomeText(o domain.Outcome) string {
	switch o {
	case domain.OutcomeShieldHeld:
		return "shield held"
	case domain.OutcomeDestroyed:
		return "artifact destroyed"
	default:
		return string(o)
	}
}
