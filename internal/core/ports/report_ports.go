package ports

import "context"

// PollTally is one poll's current counts, as reported by the tally job.
type PollTally struct {
	ID    string
	Title string
	Yes   int
	No    int
}

type ReportService interface {
	TallyAll(ctx context.Context) ([]PollTally, error)
}
