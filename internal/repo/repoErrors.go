package repo

import "errors"

var (
	ErrVotingNotFound      = errors.New("voting not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyParticipated = errors.New("already participated in voting")
)
