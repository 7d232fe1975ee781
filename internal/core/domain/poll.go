package domain

// Voter is the platform's stable numeric user id.
type Voter uint64

// Poll is one yes/no poll. The JSON field names and the uint64 voter
// encoding are the durable record contract: stored records must stay
// readable across versions.
type Poll struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ReasonToVoteYes string  `json:"reason_to_vote_yes"`
	ReasonToVoteNo  string  `json:"reason_to_vote_no"`
	YesVotes        []Voter `json:"yes_votes"`
	NoVotes         []Voter `json:"no_votes"`
}

// NewPoll builds a poll with empty vote sequences. Empty strings are
// legal for every field; no sanitization happens here.
func NewPoll(title, description, reasonYes, reasonNo string) *Poll {
	return &Poll{
		Title:           title,
		Description:     description,
		ReasonToVoteYes: reasonYes,
		ReasonToVoteNo:  reasonNo,
		YesVotes:        []Voter{},
		NoVotes:         []Voter{},
	}
}

// HasVoted reports whether v appears in either vote sequence.
func (p *Poll) HasVoted(v Voter) bool {
	for _, w := range p.YesVotes {
		if w == v {
			return true
		}
	}
	for _, w := range p.NoVotes {
		if w == v {
			return true
		}
	}
	return false
}

// CastVote appends v to the sequence selected by action. A voter may
// appear at most once across both sequences; a second vote from the
// same voter returns ErrAlreadyVoted and leaves the poll unchanged.
func (p *Poll) CastVote(v Voter, action Action) error {
	if p.HasVoted(v) {
		return ErrAlreadyVoted
	}

	switch action {
	case ActionVoteYes:
		p.YesVotes = append(p.YesVotes, v)
	case ActionVoteNo:
		p.NoVotes = append(p.NoVotes, v)
	default:
		return ErrUnknownControl
	}

	return nil
}

// Tally returns the current vote counts.
func (p *Poll) Tally() (yes, no int) {
	return len(p.YesVotes), len(p.NoVotes)
}
