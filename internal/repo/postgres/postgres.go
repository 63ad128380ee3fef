package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jjongdev/votings-backend/internal/entity"
	"github.com/jjongdev/votings-backend/internal/repo"
	"github.com/lib/pq"
)

type Storage struct {
	db *sql.DB
}

func New(postgresURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveVoting inserts the voting and its options in one transaction,
// so a voting is never visible with a partial option list.
func (s *Storage) SaveVoting(ctx context.Context, createUser int64, title string, expiredAt time.Time, options []string) (int64, error) {
	const op = "storage.postgres.SaveVoting"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO votings (create_user, title, expired_at) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err = tx.QueryRowContext(ctx, query, createUser, title, expiredAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	optionQuery := `INSERT INTO options (voting_id, label, voting_count, position) VALUES ($1, $2, 0, $3)`
	for i, label := range options {
		if _, err := tx.ExecContext(ctx, optionQuery, id, label, i); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetVotingByID(ctx context.Context, id int64) (entity.Voting, error) {
	const op = "storage.postgres.GetVotingByID"

	query := `SELECT id, create_user, title, expired_at, created_at FROM votings WHERE id = $1`

	var voting entity.Voting
	err := s.db.QueryRowContext(ctx, query, id).Scan(&voting.ID, &voting.CreateUser, &voting.Title, &voting.ExpiredAt, &voting.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Voting{}, fmt.Errorf("%s: %w", op, repo.ErrVotingNotFound)
		}
		return entity.Voting{}, fmt.Errorf("%s: %w", op, err)
	}

	options, err := s.getOptions(ctx, id)
	if err != nil {
		return entity.Voting{}, fmt.Errorf("%s: %w", op, err)
	}
	voting.Options = options

	return voting, nil
}

// GetVotings returns every voting with its owner's email populated,
// newest first, options in insertion order.
func (s *Storage) GetVotings(ctx context.Context) ([]entity.Voting, error) {
	const op = "storage.postgres.GetVotings"

	query := `SELECT v.id, v.create_user, u.email, v.title, v.expired_at, v.created_at
		FROM votings v
		JOIN users u ON u.id = v.create_user
		ORDER BY v.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var votings []entity.Voting
	index := make(map[int64]int)
	for rows.Next() {
		var voting entity.Voting
		if err := rows.Scan(&voting.ID, &voting.CreateUser, &voting.CreateUserEmail, &voting.Title, &voting.ExpiredAt, &voting.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		index[voting.ID] = len(votings)
		votings = append(votings, voting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	optionQuery := `SELECT id, voting_id, label, voting_count FROM options ORDER BY voting_id, position`

	optionRows, err := s.db.QueryContext(ctx, optionQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer optionRows.Close()

	for optionRows.Next() {
		var option entity.Option
		if err := optionRows.Scan(&option.ID, &option.VotingID, &option.Label, &option.VotingCount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if i, ok := index[option.VotingID]; ok {
			votings[i].Options = append(votings[i].Options, option)
		}
	}

	if err := optionRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return votings, nil
}

// IncrementVotingCount bumps the matching option's counter by one.
// A non-matching (voting, option) pair affects zero rows and is not an error.
func (s *Storage) IncrementVotingCount(ctx context.Context, votingID, optionID int64) error {
	const op = "storage.postgres.IncrementVotingCount"

	query := `UPDATE options SET voting_count = voting_count + 1 WHERE id = $1 AND voting_id = $2`

	if _, err := s.db.ExecContext(ctx, query, optionID, votingID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteVoting(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteVoting"

	query := `DELETE FROM votings WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrVotingNotFound
	}

	return nil
}

// HasParticipant reports whether any user has this voting in their
// participation set. The check is intentionally not scoped to a user.
func (s *Storage) HasParticipant(ctx context.Context, votingID int64) (bool, error) {
	const op = "storage.postgres.HasParticipant"

	query := `SELECT EXISTS(SELECT 1 FROM participated_votings WHERE voting_id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, votingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) SaveParticipation(ctx context.Context, userID, votingID int64) error {
	const op = "storage.postgres.SaveParticipation"

	query := `INSERT INTO participated_votings (user_id, voting_id) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, userID, votingID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%s: %w", op, repo.ErrAlreadyParticipated)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetParticipatedVotings(ctx context.Context, userID int64) ([]int64, error) {
	const op = "storage.postgres.GetParticipatedVotings"

	query := `SELECT voting_id FROM participated_votings WHERE user_id = $1`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return ids, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (entity.User, error) {
	const op = "storage.postgres.GetUserByID"

	query := `SELECT id, email FROM users WHERE id = $1`

	var user entity.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, fmt.Errorf("%s: %w", op, repo.ErrUserNotFound)
		}
		return entity.User{}, fmt.Errorf("%s: %w", op, err)
	}

	participated, err := s.GetParticipatedVotings(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("%s: %w", op, err)
	}
	user.ParticipatedVotings = participated

	return user, nil
}

func (s *Storage) getOptions(ctx context.Context, votingID int64) ([]entity.Option, error) {
	const op = "storage.postgres.getOptions"

	query := `SELECT id, voting_id, label, voting_count FROM options WHERE voting_id = $1 ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, votingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var options []entity.Option
	for rows.Next() {
		var option entity.Option
		if err := rows.Scan(&option.ID, &option.VotingID, &option.Label, &option.VotingCount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return options, nil
}
