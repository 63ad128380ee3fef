package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jjongdev/votings-backend/internal/entity"
)

//go:generate mockgen -source=voting.go -destination=mocks/mock_storage.go -package=mocks

var (
	ErrValidation  = errors.New("validation error")
	ErrEmptyOption = errors.New("empty option")
)

const (
	DefaultComment      = "가슴에 손을 얹고 솔직하게 투표해주시기 바랍니다"
	ParticipatedComment = "이미 참여한 투표는 재투표 할 수 없습니다"
)

type Votings struct {
	log           *slog.Logger
	votingStorage VotingStorage
	userStorage   UserStorage
}

type VotingStorage interface {
	SaveVoting(ctx context.Context, createUser int64, title string, expiredAt time.Time, options []string) (int64, error)
	GetVotingByID(ctx context.Context, id int64) (entity.Voting, error)
	GetVotings(ctx context.Context) ([]entity.Voting, error)
	IncrementVotingCount(ctx context.Context, votingID, optionID int64) error
	DeleteVoting(ctx context.Context, id int64) error
}

type UserStorage interface {
	HasParticipant(ctx context.Context, votingID int64) (bool, error)
	SaveParticipation(ctx context.Context, userID, votingID int64) error
	GetUserByID(ctx context.Context, id int64) (entity.User, error)
}

// VotingDetail is the payload the detail page renders.
type VotingDetail struct {
	Voting       entity.Voting
	Comment      string
	IsActive     bool
	IsCreateUser bool
	IsExpired    bool
}

func NewVotings(log *slog.Logger, votingStorage VotingStorage, userStorage UserStorage) *Votings {
	return &Votings{
		log:           log,
		votingStorage: votingStorage,
		userStorage:   userStorage,
	}
}

// CreateVoting validates the option list and persists the voting with every
// count at zero, options kept in input order.
func (v *Votings) CreateVoting(ctx context.Context, createUser int64, title string, expiredAt time.Time, options []string) (int64, error) {
	const op = "Votings.CreateVoting"

	if title == "" {
		return 0, fmt.Errorf("%w: title is empty", ErrValidation)
	}

	for _, option := range options {
		if option == "" {
			return 0, fmt.Errorf("%w: option is empty", ErrEmptyOption)
		}
	}

	id, err := v.votingStorage.SaveVoting(ctx, createUser, title, expiredAt, options)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	v.log.Info("voting created", slog.String("op", op), slog.Int64("votingID", id))

	return id, nil
}

// SelectedVoting loads one voting and computes the flags the detail page
// needs. The participation flag is a global check: any user's participation
// marks the voting as already contested for everyone.
func (v *Votings) SelectedVoting(ctx context.Context, userID, votingID int64, now time.Time) (VotingDetail, error) {
	const op = "Votings.SelectedVoting"

	voting, err := v.votingStorage.GetVotingByID(ctx, votingID)
	if err != nil {
		return VotingDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	participated, err := v.userStorage.HasParticipant(ctx, votingID)
	if err != nil {
		return VotingDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	detail := VotingDetail{
		Voting:  voting,
		Comment: DefaultComment,
	}

	if strconv.FormatInt(voting.CreateUser, 10) == strconv.FormatInt(userID, 10) {
		detail.IsCreateUser = true
	}

	if participated {
		detail.IsActive = true
		detail.Comment = ParticipatedComment
	}

	if now.After(voting.ExpiredAt) {
		detail.IsExpired = true
	}

	return detail, nil
}

// Participate records one vote in two independent store calls: first the
// option counter, then the user's participation set. There is no transaction
// spanning both, so a failure in between leaves the counter incremented
// without the membership record.
func (v *Votings) Participate(ctx context.Context, userID, votingID, optionID int64) error {
	const op = "Votings.Participate"

	participated, err := v.userStorage.HasParticipant(ctx, votingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Already-contested votings are a silent no-op, not an error.
	if participated {
		v.log.Info("voting already has a participant, skipping",
			slog.String("op", op), slog.Int64("votingID", votingID))
		return nil
	}

	if err := v.votingStorage.IncrementVotingCount(ctx, votingID, optionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := v.userStorage.SaveParticipation(ctx, userID, votingID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteVoting removes the voting only when the requester owns it. A
// non-owner request succeeds without deleting anything.
func (v *Votings) DeleteVoting(ctx context.Context, userID, votingID int64) error {
	const op = "Votings.DeleteVoting"

	voting, err := v.votingStorage.GetVotingByID(ctx, votingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if strconv.FormatInt(voting.CreateUser, 10) != strconv.FormatInt(userID, 10) {
		v.log.Info("delete requested by non-owner, ignoring",
			slog.String("op", op), slog.Int64("votingID", votingID), slog.Int64("userID", userID))
		return nil
	}

	if err := v.votingStorage.DeleteVoting(ctx, votingID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// FilterNotExpired returns the votings whose deadline is strictly after now.
// A voting expiring exactly at now is in neither filter.
func (v *Votings) FilterNotExpired(ctx context.Context, now time.Time) ([]entity.Voting, error) {
	const op = "Votings.FilterNotExpired"

	all, err := v.votingStorage.GetVotings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	votings := make([]entity.Voting, 0, len(all))
	for _, voting := range all {
		if voting.ExpiredAt.After(now) {
			votings = append(votings, voting)
		}
	}

	return votings, nil
}

// FilterExpired returns the votings whose deadline is strictly before now.
func (v *Votings) FilterExpired(ctx context.Context, now time.Time) ([]entity.Voting, error) {
	const op = "Votings.FilterExpired"

	all, err := v.votingStorage.GetVotings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	votings := make([]entity.Voting, 0, len(all))
	for _, voting := range all {
		if voting.ExpiredAt.Before(now) {
			votings = append(votings, voting)
		}
	}

	return votings, nil
}

// ParticipatedVotings lists the voting ids the user has voted in.
func (v *Votings) ParticipatedVotings(ctx context.Context, userID int64) ([]int64, error) {
	const op = "Votings.ParticipatedVotings"

	user, err := v.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user.ParticipatedVotings, nil
}
