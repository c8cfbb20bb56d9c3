package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"justdebate.online/backend/internal/domain"
)

func TestVoteRepository_Cast(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name      string
		direction domain.VoteDirection
	}{
		{name: "records an upvote", direction: domain.VoteUp},
		{name: "records a downvote", direction: domain.VoteDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockDB(t)
			mock.ExpectExec(`INSERT INTO votes .+ ON CONFLICT \(user_id, target_id, target_type\) DO UPDATE`).
				WithArgs(userID, targetID, domain.TargetArgument, tt.direction).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))

			err := NewVoteRepository(mock).Cast(context.Background(), userID, targetID, domain.TargetArgument, tt.direction)
			if err != nil {
				t.Fatalf("Cast() error = %v", err)
			}

			expectationsWereMet(t, mock)
		})
	}
}

func TestVoteRepository_Tally(t *testing.T) {
	targetID := uuid.New()

	tests := []struct {
		name string
		rows *pgxmock.Rows
		want domain.VoteCounts
	}{
		{
			name: "counts both directions",
			rows: pgxmock.NewRows([]string{"upvotes", "downvotes"}).AddRow(3, 1),
			want: domain.VoteCounts{Upvotes: 3, Downvotes: 1},
		},
		{
			name: "no votes yields zeros",
			rows: pgxmock.NewRows([]string{"upvotes", "downvotes"}).AddRow(0, 0),
			want: domain.VoteCounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockDB(t)
			mock.ExpectQuery(`SELECT .+ FROM votes`).
				WithArgs(targetID, domain.TargetArgument).
				WillReturnRows(tt.rows)

			counts, err := NewVoteRepository(mock).Tally(context.Background(), targetID, domain.TargetArgument)
			if err != nil {
				t.Fatalf("Tally() error = %v", err)
			}
			if counts != tt.want {
				t.Errorf("Tally() = %+v, want %+v", counts, tt.want)
			}

			expectationsWereMet(t, mock)
		})
	}
}
