package domain

import "errors"

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrAlreadyVoted   = errors.New("voter has already voted")
	ErrUnknownControl = errors.New("unknown control id")
	ErrInvalidVoter   = errors.New("invalid voter id")
)
