package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"justdebate.online/backend/internal/domain"
)

// VoteRepository persists votes. The unique constraint on
// (user_id, target_id, target_type) guarantees one vote per user per target.
type VoteRepository struct {
	db Querier
}

// NewVoteRepository creates a vote repository on top of the given handle.
func NewVoteRepository(db Querier) *VoteRepository {
	return &VoteRepository{db: db}
}

// Cast records a vote, replacing the user's previous direction on the same
// target if one exists.
func (r *VoteRepository) Cast(ctx context.Context, userID, targetID uuid.UUID, kind domain.TargetKind, direction domain.VoteDirection) error {
	query, args, err := psql.Insert("votes").
		Columns("user_id", "target_id", "target_type", "vote_type").
		Values(userID, targetID, kind, direction).
		Suffix("ON CONFLICT (user_id, target_id, target_type) DO UPDATE SET vote_type = EXCLUDED.vote_type").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return mapError(err, "vote")
	}
	return nil
}

// Tally recounts the votes on a target from the vote rows themselves.
func (r *VoteRepository) Tally(ctx context.Context, targetID uuid.UUID, kind domain.TargetKind) (domain.VoteCounts, error) {
	query, args, err := psql.Select(
		"COUNT(*) FILTER (WHERE vote_type = 'up') AS upvotes",
		"COUNT(*) FILTER (WHERE vote_type = 'down') AS downvotes",
	).
		From("votes").
		Where("target_id = ? AND target_type = ?", targetID, kind).
		ToSql()
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("build query: %w", err)
	}

	var counts domain.VoteCounts
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, r.db), &counts, query, args...); err != nil {
		return domain.VoteCounts{}, mapError(err, "votes")
	}
	return counts, nil
}
