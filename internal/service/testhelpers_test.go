package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"justdebate.online/backend/internal/auth"
	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/repository"
)

// In-memory fakes implementing the narrow store interfaces. They model just
// enough behavior for the flows under test, including not-found sentinels.

type memUserStore struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func newMemUserStore(users ...*domain.User) *memUserStore {
	s := &memUserStore{users: map[uuid.UUID]*domain.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memUserStore) Create(_ context.Context, p repository.CreateUserParams) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u := &domain.User{
		ID:        uuid.New(),
		GoogleID:  p.GoogleID,
		Email:     p.Email,
		Name:      p.Name,
		Avatar:    p.Avatar,
		IsAdmin:   p.IsAdmin,
		Tags:      []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
	}
	return u, nil
}

func (s *memUserStore) GetByGoogleID(_ context.Context, googleID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
}

func (s *memUserStore) RefreshLoginProfile(_ context.Context, id uuid.UUID, name, avatar string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
	}
	u.Name = name
	u.Avatar = avatar
	u.UpdatedAt = time.Now()
	return u, nil
}

func (s *memUserStore) List(_ context.Context) ([]domain.UserSummary, error) {
	out := []domain.UserSummary{}
	for _, u := range s.users {
		out = append(out, domain.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Rating: u.Rating})
	}
	return out, nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id uuid.UUID, p repository.UserProfileUpdate) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Tags != nil {
		u.Tags = *p.Tags
	}
	return u, nil
}

type memCommentStore struct {
	comments map[uuid.UUID]*domain.Comment
	authors  map[uuid.UUID]domain.Author
}

func newMemCommentStore() *memCommentStore {
	return &memCommentStore{
		comments: map[uuid.UUID]*domain.Comment{},
		authors:  map[uuid.UUID]domain.Author{},
	}
}

func (s *memCommentStore) Create(_ context.Context, p repository.CreateCommentParams) (*domain.Comment, error) {
	c := &domain.Comment{
		ID:           uuid.New(),
		Content:      p.Content,
		TargetUserID: p.TargetUserID,
		AuthorID:     p.AuthorID,
		CreatedAt:    time.Now(),
	}
	s.comments[c.ID] = c
	s.authors[c.ID] = domain.Author{ID: p.AuthorID}
	return c, nil
}

func (s *memCommentStore) GetWithAuthor(_ context.Context, id uuid.UUID) (*domain.CommentWithAuthor, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment: %w", apperrors.ErrNotFound)
	}
	return &domain.CommentWithAuthor{ID: c.ID, Content: c.Content, CreatedAt: c.CreatedAt, Author: s.authors[id]}, nil
}

func (s *memCommentStore) ListForUser(_ context.Context, userID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	out := []domain.CommentWithAuthor{}
	for id, c := range s.comments {
		if c.TargetUserID == userID {
			out = append(out, domain.CommentWithAuthor{ID: c.ID, Content: c.Content, Author: s.authors[id]})
		}
	}
	return out, nil
}

type memTopicStore struct {
	topics  map[uuid.UUID]*domain.Topic
	authors map[uuid.UUID]domain.Author
}

func newMemTopicStore() *memTopicStore {
	return &memTopicStore{
		topics:  map[uuid.UUID]*domain.Topic{},
		authors: map[uuid.UUID]domain.Author{},
	}
}

func (s *memTopicStore) add(t *domain.Topic, author domain.Author) {
	s.topics[t.ID] = t
	s.authors[t.ID] = author
}

func (s *memTopicStore) Create(_ context.Context, p repository.CreateTopicParams) (*domain.Topic, error) {
	t := &domain.Topic{
		ID:           uuid.New(),
		Title:        p.Title,
		Description:  p.Description,
		AuthorID:     p.AuthorID,
		Status:       domain.TopicStatusActive,
		Tags:         p.Tags,
		Participants: 1,
		EndDate:      p.EndDate,
		CreatedAt:    time.Now(),
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	s.add(t, domain.Author{ID: p.AuthorID})
	return t, nil
}

func (s *memTopicStore) GetByID(_ context.Context, id uuid.UUID) (*domain.TopicWithAuthor, error) {
	t, ok := s.topics[id]
	if !ok {
		return nil, fmt.Errorf("topic: %w", apperrors.ErrNotFound)
	}
	return &domain.TopicWithAuthor{
		ID: t.ID, Title: t.Title, Description: t.Description, Status: t.Status,
		Tags: t.Tags, Participants: t.Participants, EndDate: t.EndDate,
		CreatedAt: t.CreatedAt, Author: s.authors[id],
	}, nil
}

func (s *memTopicStore) List(_ context.Context) ([]domain.TopicWithAuthor, error) {
	out := []domain.TopicWithAuthor{}
	for id := range s.topics {
		t, _ := s.GetByID(context.Background(), id)
		out = append(out, *t)
	}
	return out, nil
}

func (s *memTopicStore) Update(_ context.Context, id uuid.UUID, p repository.TopicUpdate) (*domain.Topic, error) {
	t, ok := s.topics[id]
	if !ok {
		return nil, fmt.Errorf("topic: %w", apperrors.ErrNotFound)
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.EndDate != nil {
		t.EndDate = p.EndDate
	}
	return t, nil
}

func (s *memTopicStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.topics[id]; !ok {
		return fmt.Errorf("topic: %w", apperrors.ErrNotFound)
	}
	delete(s.topics, id)
	return nil
}

func (s *memTopicStore) IncrementParticipants(_ context.Context, id uuid.UUID) error {
	t, ok := s.topics[id]
	if !ok {
		return fmt.Errorf("topic: %w", apperrors.ErrNotFound)
	}
	t.Participants++
	return nil
}

type memArgumentStore struct {
	arguments map[uuid.UUID]*domain.Argument
	authors   map[uuid.UUID]domain.Author
}

func newMemArgumentStore() *memArgumentStore {
	return &memArgumentStore{
		arguments: map[uuid.UUID]*domain.Argument{},
		authors:   map[uuid.UUID]domain.Author{},
	}
}

func (s *memArgumentStore) add(a *domain.Argument) {
	s.arguments[a.ID] = a
	s.authors[a.ID] = domain.Author{ID: a.AuthorID}
}

func (s *memArgumentStore) Create(_ context.Context, p repository.CreateArgumentParams) (*domain.Argument, error) {
	a := &domain.Argument{
		ID:        uuid.New(),
		Content:   p.Content,
		Type:      p.Type,
		TopicID:   p.TopicID,
		AuthorID:  p.AuthorID,
		CreatedAt: time.Now(),
	}
	s.add(a)
	return a, nil
}

func (s *memArgumentStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Argument, error) {
	a, ok := s.arguments[id]
	if !ok {
		return nil, fmt.Errorf("argument: %w", apperrors.ErrNotFound)
	}
	return a, nil
}

func (s *memArgumentStore) GetWithAuthor(_ context.Context, id uuid.UUID) (*domain.ArgumentWithAuthor, error) {
	a, ok := s.arguments[id]
	if !ok {
		return nil, fmt.Errorf("argument: %w", apperrors.ErrNotFound)
	}
	return &domain.ArgumentWithAuthor{
		ID: a.ID, Content: a.Content, Type: a.Type,
		Upvotes: a.Upvotes, Downvotes: a.Downvotes,
		CreatedAt: a.CreatedAt, Author: s.authors[id],
	}, nil
}

func (s *memArgumentStore) ListByTopic(_ context.Context, topicID uuid.UUID) ([]domain.ArgumentWithAuthor, error) {
	out := []domain.ArgumentWithAuthor{}
	for id, a := range s.arguments {
		if a.TopicID == topicID {
			withAuthor, _ := s.GetWithAuthor(context.Background(), id)
			out = append(out, *withAuthor)
		}
	}
	return out, nil
}

func (s *memArgumentStore) SetVoteCounts(_ context.Context, id uuid.UUID, counts domain.VoteCounts) error {
	a, ok := s.arguments[id]
	if !ok {
		return fmt.Errorf("argument: %w", apperrors.ErrNotFound)
	}
	a.Upvotes = counts.Upvotes
	a.Downvotes = counts.Downvotes
	return nil
}

type memReplyStore struct {
	replies map[uuid.UUID]*domain.Reply
}

func newMemReplyStore() *memReplyStore {
	return &memReplyStore{replies: map[uuid.UUID]*domain.Reply{}}
}

func (s *memReplyStore) Create(_ context.Context, p repository.CreateReplyParams) (*domain.Reply, error) {
	r := &domain.Reply{
		ID:         uuid.New(),
		Content:    p.Content,
		ArgumentID: p.ArgumentID,
		AuthorID:   p.AuthorID,
		CreatedAt:  time.Now(),
	}
	s.replies[r.ID] = r
	return r, nil
}

func (s *memReplyStore) GetWithAuthor(_ context.Context, id uuid.UUID) (*domain.ReplyWithAuthor, error) {
	r, ok := s.replies[id]
	if !ok {
		return nil, fmt.Errorf("reply: %w", apperrors.ErrNotFound)
	}
	return &domain.ReplyWithAuthor{
		ID: r.ID, Content: r.Content, CreatedAt: r.CreatedAt,
		Author: domain.Author{ID: r.AuthorID},
	}, nil
}

func (s *memReplyStore) ListByArgument(_ context.Context, argumentID uuid.UUID) ([]domain.ReplyWithAuthor, error) {
	out := []domain.ReplyWithAuthor{}
	for id, r := range s.replies {
		if r.ArgumentID == argumentID {
			withAuthor, _ := s.GetWithAuthor(context.Background(), id)
			out = append(out, *withAuthor)
		}
	}
	return out, nil
}

type voteKey struct {
	user   uuid.UUID
	target uuid.UUID
	kind   domain.TargetKind
}

// memVoteStore models the unique (user, target, kind) constraint: a second
// cast by the same user replaces the stored direction.
type memVoteStore struct {
	votes map[voteKey]domain.VoteDirection
}

func newMemVoteStore() *memVoteStore {
	return &memVoteStore{votes: map[voteKey]domain.VoteDirection{}}
}

func (s *memVoteStore) Cast(_ context.Context, userID, targetID uuid.UUID, kind domain.TargetKind, direction domain.VoteDirection) error {
	s.votes[voteKey{userID, targetID, kind}] = direction
	return nil
}

func (s *memVoteStore) Tally(_ context.Context, targetID uuid.UUID, kind domain.TargetKind) (domain.VoteCounts, error) {
	var counts domain.VoteCounts
	for k, d := range s.votes {
		if k.target != targetID || k.kind != kind {
			continue
		}
		if d == domain.VoteUp {
			counts.Upvotes++
		} else {
			counts.Downvotes++
		}
	}
	return counts, nil
}

// nopTx runs the function without a real transaction.
type nopTx struct{}

func (nopTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// stubVerifier returns a fixed identity or error.
type stubVerifier struct {
	identity *auth.Identity
	err      error
}

func (v stubVerifier) Verify(context.Context, string) (*auth.Identity, error) {
	return v.identity, v.err
}
