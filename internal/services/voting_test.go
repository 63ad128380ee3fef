package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jjongdev/votings-backend/internal/entity"
	"github.com/jjongdev/votings-backend/internal/repo"
	"github.com/jjongdev/votings-backend/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVotings(vs VotingStorage, us UserStorage) *Votings {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewVotings(log, vs, us)
}

func TestCreateVoting_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)

	expiredAt := time.Now().Add(24 * time.Hour)
	options := []string{"A", "B"}

	votingStorage.EXPECT().
		SaveVoting(gomock.Any(), int64(7), "점심 메뉴", expiredAt, options).
		Return(int64(42), nil)

	votings := newTestVotings(votingStorage, nil)

	id, err := votings.CreateVoting(context.Background(), 7, "점심 메뉴", expiredAt, options)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreateVoting_EmptyOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No storage expectations: an empty option must abort before any write.
	votings := newTestVotings(mocks.NewMockVotingStorage(ctrl), nil)

	_, err := votings.CreateVoting(context.Background(), 7, "점심 메뉴", time.Now(), []string{"A", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyOption)
}

func TestCreateVoting_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votings := newTestVotings(mocks.NewMockVotingStorage(ctrl), nil)

	_, err := votings.CreateVoting(context.Background(), 7, "", time.Now(), []string{"A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateVoting_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	votingStorage.EXPECT().
		SaveVoting(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	votings := newTestVotings(votingStorage, nil)

	_, err := votings.CreateVoting(context.Background(), 7, "점심 메뉴", time.Now(), []string{"A"})
	require.Error(t, err)
}

func TestFilters_PartitionStrict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	all := []entity.Voting{
		{ID: 1, Title: "past", ExpiredAt: now.Add(-time.Hour)},
		{ID: 2, Title: "boundary", ExpiredAt: now},
		{ID: 3, Title: "future", ExpiredAt: now.Add(time.Hour)},
	}

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	votingStorage.EXPECT().GetVotings(gomock.Any()).Return(all, nil).Times(2)

	votings := newTestVotings(votingStorage, nil)

	active, err := votings.FilterNotExpired(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(3), active[0].ID)

	expired, err := votings.FilterExpired(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, int64(1), expired[0].ID)

	// A deadline equal to the probe instant belongs to neither list.
	for _, voting := range append(active, expired...) {
		assert.NotEqual(t, int64(2), voting.ID)
	}
}

func TestFilterNotExpired_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	votingStorage.EXPECT().GetVotings(gomock.Any()).Return(nil, errors.New("connection refused"))

	votings := newTestVotings(votingStorage, nil)

	_, err := votings.FilterNotExpired(context.Background(), time.Now())
	require.Error(t, err)
}

func TestSelectedVoting_Flags(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       int64
		voting       entity.Voting
		participated bool
		wantCreator  bool
		wantExpired  bool
		wantActive   bool
		wantComment  string
	}{
		{
			name:        "owner, open, untouched",
			userID:      7,
			voting:      entity.Voting{ID: 1, CreateUser: 7, ExpiredAt: now.Add(time.Hour)},
			wantCreator: true,
			wantComment: DefaultComment,
		},
		{
			name:         "other user, expired, participated",
			userID:       8,
			voting:       entity.Voting{ID: 1, CreateUser: 7, ExpiredAt: now.Add(-time.Hour)},
			participated: true,
			wantExpired:  true,
			wantActive:   true,
			wantComment:  ParticipatedComment,
		},
		{
			name:        "deadline exactly now is not expired",
			userID:      8,
			voting:      entity.Voting{ID: 1, CreateUser: 7, ExpiredAt: now},
			wantComment: DefaultComment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			votingStorage := mocks.NewMockVotingStorage(ctrl)
			userStorage := mocks.NewMockUserStorage(ctrl)

			votingStorage.EXPECT().GetVotingByID(gomock.Any(), tt.voting.ID).Return(tt.voting, nil)
			userStorage.EXPECT().HasParticipant(gomock.Any(), tt.voting.ID).Return(tt.participated, nil)

			votings := newTestVotings(votingStorage, userStorage)

			detail, err := votings.SelectedVoting(context.Background(), tt.userID, tt.voting.ID, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreator, detail.IsCreateUser)
			assert.Equal(t, tt.wantExpired, detail.IsExpired)
			assert.Equal(t, tt.wantActive, detail.IsActive)
			assert.Equal(t, tt.wantComment, detail.Comment)
		})
	}
}

func TestSelectedVoting_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	votingStorage.EXPECT().
		GetVotingByID(gomock.Any(), int64(99)).
		Return(entity.Voting{}, repo.ErrVotingNotFound)

	votings := newTestVotings(votingStorage, mocks.NewMockUserStorage(ctrl))

	_, err := votings.SelectedVoting(context.Background(), 7, 99, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrVotingNotFound)
}

func TestParticipate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	userStorage := mocks.NewMockUserStorage(ctrl)

	gomock.InOrder(
		userStorage.EXPECT().HasParticipant(gomock.Any(), int64(1)).Return(false, nil),
		votingStorage.EXPECT().IncrementVotingCount(gomock.Any(), int64(1), int64(10)).Return(nil),
		userStorage.EXPECT().SaveParticipation(gomock.Any(), int64(7), int64(1)).Return(nil),
	)

	votings := newTestVotings(votingStorage, userStorage)

	err := votings.Participate(context.Background(), 7, 1, 10)
	require.NoError(t, err)
}

// A second participation is a silent no-op: the membership probe is not
// scoped to a user, so any recorded participation blocks everyone.
func TestParticipate_AlreadyContested(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	userStorage := mocks.NewMockUserStorage(ctrl)

	userStorage.EXPECT().HasParticipant(gomock.Any(), int64(1)).Return(true, nil)

	votings := newTestVotings(votingStorage, userStorage)

	// Different user than the one who voted: still blocked, no writes.
	err := votings.Participate(context.Background(), 8, 1, 10)
	require.NoError(t, err)
}

func TestParticipate_IncrementError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	userStorage := mocks.NewMockUserStorage(ctrl)

	userStorage.EXPECT().HasParticipant(gomock.Any(), int64(1)).Return(false, nil)
	votingStorage.EXPECT().
		IncrementVotingCount(gomock.Any(), int64(1), int64(10)).
		Return(errors.New("connection refused"))

	votings := newTestVotings(votingStorage, userStorage)

	err := votings.Participate(context.Background(), 7, 1, 10)
	require.Error(t, err)
}

func TestParticipate_ParticipationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	userStorage := mocks.NewMockUserStorage(ctrl)

	// The counter is already incremented when the membership write fails;
	// there is no compensating rollback.
	gomock.InOrder(
		userStorage.EXPECT().HasParticipant(gomock.Any(), int64(1)).Return(false, nil),
		votingStorage.EXPECT().IncrementVotingCount(gomock.Any(), int64(1), int64(10)).Return(nil),
		userStorage.EXPECT().SaveParticipation(gomock.Any(), int64(7), int64(1)).Return(errors.New("connection refused")),
	)

	votings := newTestVotings(votingStorage, userStorage)

	err := votings.Participate(context.Background(), 7, 1, 10)
	require.Error(t, err)
}

func TestDeleteVoting_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)

	gomock.InOrder(
		votingStorage.EXPECT().GetVotingByID(gomock.Any(), int64(1)).Return(entity.Voting{ID: 1, CreateUser: 7}, nil),
		votingStorage.EXPECT().DeleteVoting(gomock.Any(), int64(1)).Return(nil),
	)

	votings := newTestVotings(votingStorage, nil)

	err := votings.DeleteVoting(context.Background(), 7, 1)
	require.NoError(t, err)
}

func TestDeleteVoting_NonOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)

	// No DeleteVoting expectation: a non-owner request must not delete.
	votingStorage.EXPECT().GetVotingByID(gomock.Any(), int64(1)).Return(entity.Voting{ID: 1, CreateUser: 7}, nil)

	votings := newTestVotings(votingStorage, nil)

	err := votings.DeleteVoting(context.Background(), 8, 1)
	require.NoError(t, err)
}

func TestDeleteVoting_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votingStorage := mocks.NewMockVotingStorage(ctrl)
	votingStorage.EXPECT().
		GetVotingByID(gomock.Any(), int64(1)).
		Return(entity.Voting{}, repo.ErrVotingNotFound)

	votings := newTestVotings(votingStorage, nil)

	err := votings.DeleteVoting(context.Background(), 7, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrVotingNotFound)
}

func TestParticipatedVotings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userStorage := mocks.NewMockUserStorage(ctrl)
	userStorage.EXPECT().
		GetUserByID(gomock.Any(), int64(7)).
		Return(entity.User{ID: 7, Email: "kim@example.com", ParticipatedVotings: []int64{1, 3}}, nil)

	votings := newTestVotings(nil, userStorage)

	ids, err := votings.ParticipatedVotings(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
}
