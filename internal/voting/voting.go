// Package voting holds the rules shared by every votable entity kind:
// the allowed-choice sets, tally derivation and status eligibility.
package voting

import (
	"errors"
	"strings"

	"invest-service/internal/ports/models"
)

// Kind identifies one of the votable entity kinds. Its value doubles as
// the votable_type discriminator on vote rows.
type Kind string

const (
	KindProposal   Kind = "proposal"
	KindSuggestion Kind = "suggestion"
	KindAssistance Kind = "assistance"
)

const (
	ChoiceYes       = "yes"
	ChoiceNo        = "no"
	ChoiceAssist    = "assist"
	ChoiceNotAssist = "not-assist"
)

var (
	ErrInvalidChoice     = errors.New("invalid vote choice")
	ErrNotFound          = errors.New("entity not found")
	ErrNotVotable        = errors.New("entity is not open for voting")
	ErrUnknownVoter      = errors.New("unknown voter")
	ErrUnknownKind       = errors.New("unknown votable kind")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var kindChoices = map[Kind][]string{
	KindProposal:   {ChoiceYes, ChoiceNo},
	KindSuggestion: {ChoiceYes, ChoiceNo},
	KindAssistance: {ChoiceAssist, ChoiceNotAssist},
}

// Choices returns the closed choice set for a kind, in display order.
func Choices(kind Kind) []string {
	return kindChoices[kind]
}

// ValidChoice reports whether choice belongs to the kind's allowed set.
func ValidChoice(kind Kind, choice string) bool {
	for _, c := range kindChoices[kind] {
		if c == choice {
			return true
		}
	}
	return false
}

// Votable reports whether an entity in the given status accepts votes.
// Voting and approved items are both open for voting; pending and
// rejected ones are not.
func Votable(status models.Status) bool {
	return status == models.StatusVoting || status == models.StatusApproved
}

var transitions = map[models.Status][]models.Status{
	models.StatusPending: {models.StatusVoting, models.StatusApproved, models.StatusRejected},
	models.StatusVoting:  {models.StatusApproved, models.StatusRejected},
}

// CanTransition reports whether an admin may move an entity from one
// status to another. Approved and rejected are terminal.
func CanTransition(from, to models.Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Tally is the aggregate derived from an entity's vote list. It is never
// stored; it is recomputed from the votes on every read so it cannot
// drift from them.
type Tally struct {
	Counts      map[string]int
	TotalVoters int
}

// TallyVotes folds a vote list into per-choice counts. Every choice in
// the kind's set appears in Counts, zero included.
func TallyVotes(kind Kind, votes []models.Vote) Tally {
	counts := make(map[string]int, len(kindChoices[kind]))
	for _, c := range kindChoices[kind] {
		counts[c] = 0
	}
	for _, v := range votes {
		if _, ok := counts[v.Choice]; ok {
			counts[v.Choice]++
		}
	}
	return Tally{Counts: counts, TotalVoters: len(votes)}
}

// ChoiceKey maps a choice to its wire key in the voting-data projection,
// e.g. "yes" -> "yesVotes", "not-assist" -> "notAssistVotes".
func ChoiceKey(choice string) string {
	parts := strings.Split(choice, "-")
	key := parts[0]
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		key += strings.ToUpper(p[:1]) + p[1:]
	}
	return key + "Votes"
}
