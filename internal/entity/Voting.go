package entity

import "time"

type Voting struct {
	ID              int64
	CreateUser      int64
	CreateUserEmail *string
	Title           string
	ExpiredAt       time.Time
	CreatedAt       time.Time
	Options         []Option
}

type Option struct {
	ID          int64
	VotingID    int64
	Label       string
	VotingCount int64
}
