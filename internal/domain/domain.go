// Package domain defines the entities of the debate platform and their
// JSON/database projections. Column mapping uses scany db tags; wire names
// match the public API (camelCase).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TopicStatus is the lifecycle state of a topic.
type TopicStatus string

const (
	TopicStatusActive    TopicStatus = "active"
	TopicStatusClosed    TopicStatus = "closed"
	TopicStatusScheduled TopicStatus = "scheduled"
)

// Valid reports whether the status is one of the known states.
func (s TopicStatus) Valid() bool {
	switch s {
	case TopicStatusActive, TopicStatusClosed, TopicStatusScheduled:
		return true
	}
	return false
}

// ArgumentType is the polarity of an argument relative to its topic.
type ArgumentType string

const (
	ArgumentPro ArgumentType = "pro"
	ArgumentCon ArgumentType = "con"
)

// Valid reports whether the polarity is pro or con.
func (t ArgumentType) Valid() bool {
	return t == ArgumentPro || t == ArgumentCon
}

// TargetKind discriminates what entity a vote applies to.
type TargetKind string

const (
	TargetTopic    TargetKind = "topic"
	TargetArgument TargetKind = "argument"
	TargetReply    TargetKind = "reply"
)

// VoteDirection is the direction of a vote.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Valid reports whether the direction is up or down.
func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// User is a full user row.
type User struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	GoogleID            string    `db:"google_id" json:"googleId"`
	Email               string    `db:"email" json:"email"`
	Name                string    `db:"name" json:"name"`
	Avatar              string    `db:"avatar" json:"avatar"`
	Bio                 string    `db:"bio" json:"bio"`
	Rating              int       `db:"rating" json:"rating"`
	DebatesParticipated int       `db:"debates_participated" json:"debatesParticipated"`
	IsAdmin             bool      `db:"is_admin" json:"isAdmin"`
	Tags                []string  `db:"tags" json:"tags"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}

// AuthUser is the resolved identity attached to authenticated requests.
type AuthUser struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"isAdmin"`
}

// Author is the joined author projection embedded in resource responses.
// Email is populated only where the endpoint exposes it (topics).
type Author struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Name   string    `db:"name" json:"name"`
	Email  string    `db:"email" json:"email,omitempty"`
	Avatar string    `db:"avatar" json:"avatar"`
}

// UserSummary is the user-list projection, ordered by rating.
type UserSummary struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Email               string    `db:"email" json:"email"`
	Avatar              string    `db:"avatar" json:"avatar"`
	Bio                 string    `db:"bio" json:"bio"`
	Rating              int       `db:"rating" json:"rating"`
	DebatesParticipated int       `db:"debates_participated" json:"debatesParticipated"`
	Tags                []string  `db:"tags" json:"tags"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
}

// Profile is the user projection returned by the auth endpoints.
type Profile struct {
	ID                  uuid.UUID           `json:"id"`
	Name                string              `json:"name"`
	Email               string              `json:"email"`
	Avatar              string              `json:"avatar"`
	Bio                 string              `json:"bio"`
	Rating              int                 `json:"rating"`
	DebatesParticipated int                 `json:"debatesParticipated"`
	IsAdmin             bool                `json:"isAdmin"`
	Tags                []string            `json:"tags"`
	JoinedDate          time.Time           `json:"joinedDate"`
	Comments            []CommentWithAuthor `json:"comments"`
}

// ProfileOf builds the auth-endpoint projection of a user. Comments are an
// empty placeholder, loaded separately by the user detail endpoint.
func ProfileOf(u *User) Profile {
	return Profile{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Avatar:              u.Avatar,
		Bio:                 u.Bio,
		Rating:              u.Rating,
		DebatesParticipated: u.DebatesParticipated,
		IsAdmin:             u.IsAdmin,
		Tags:                u.Tags,
		JoinedDate:          u.CreatedAt,
		Comments:            []CommentWithAuthor{},
	}
}

// Topic is a full topic row.
type Topic struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Title        string      `db:"title" json:"title"`
	Description  string      `db:"description" json:"description"`
	AuthorID     uuid.UUID   `db:"author_id" json:"authorId"`
	Status       TopicStatus `db:"status" json:"status"`
	Tags         []string    `db:"tags" json:"tags"`
	Participants int         `db:"participants" json:"participants"`
	Upvotes      int         `db:"upvotes" json:"upvotes"`
	Downvotes    int         `db:"downvotes" json:"downvotes"`
	EndDate      *time.Time  `db:"end_date" json:"endDate"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updatedAt"`
}

// TopicWithAuthor is the topic projection with its author joined in.
type TopicWithAuthor struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Title        string      `db:"title" json:"title"`
	Description  string      `db:"description" json:"description"`
	Status       TopicStatus `db:"status" json:"status"`
	Tags         []string    `db:"tags" json:"tags"`
	Participants int         `db:"participants" json:"participants"`
	Upvotes      int         `db:"upvotes" json:"upvotes"`
	Downvotes    int         `db:"downvotes" json:"downvotes"`
	EndDate      *time.Time  `db:"end_date" json:"endDate"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	Author       Author      `db:"author" json:"author"`
}

// Argument is a full argument row.
type Argument struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Content   string       `db:"content" json:"content"`
	Type      ArgumentType `db:"type" json:"type"`
	TopicID   uuid.UUID    `db:"topic_id" json:"topicId"`
	AuthorID  uuid.UUID    `db:"author_id" json:"authorId"`
	Upvotes   int          `db:"upvotes" json:"upvotes"`
	Downvotes int          `db:"downvotes" json:"downvotes"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time    `db:"updated_at" json:"updatedAt"`
}

// ArgumentWithAuthor is the argument projection with its author joined in.
type ArgumentWithAuthor struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Content   string       `db:"content" json:"content"`
	Type      ArgumentType `db:"type" json:"type"`
	Upvotes   int          `db:"upvotes" json:"upvotes"`
	Downvotes int          `db:"downvotes" json:"downvotes"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
	Author    Author       `db:"author" json:"author"`
}

// Reply is a full reply row.
type Reply struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Content    string    `db:"content" json:"content"`
	ArgumentID uuid.UUID `db:"argument_id" json:"argumentId"`
	AuthorID   uuid.UUID `db:"author_id" json:"authorId"`
	Upvotes    int       `db:"upvotes" json:"upvotes"`
	Downvotes  int       `db:"downvotes" json:"downvotes"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// ReplyWithAuthor is the reply projection with its author joined in.
type ReplyWithAuthor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	Upvotes   int       `db:"upvotes" json:"upvotes"`
	Downvotes int       `db:"downvotes" json:"downvotes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Author    Author    `db:"author" json:"author"`
}

// Vote is a single vote row. At most one row exists per
// (user, target, target kind), enforced by a unique constraint.
type Vote struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	UserID     uuid.UUID     `db:"user_id" json:"userId"`
	TargetID   uuid.UUID     `db:"target_id" json:"targetId"`
	TargetType TargetKind    `db:"target_type" json:"targetType"`
	VoteType   VoteDirection `db:"vote_type" json:"voteType"`
	CreatedAt  time.Time     `db:"created_at" json:"createdAt"`
}

// VoteCounts is the recomputed tally returned by vote endpoints.
type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Comment is a full profile-comment row.
type Comment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Content      string    `db:"content" json:"content"`
	TargetUserID uuid.UUID `db:"target_user_id" json:"targetUserId"`
	AuthorID     uuid.UUID `db:"author_id" json:"authorId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// CommentWithAuthor is the comment projection with its author joined in.
type CommentWithAuthor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Author    Author    `db:"author" json:"author"`
}

// UserDetail is the user row plus the comments left on their profile.
type UserDetail struct {
	User
	Comments []CommentWithAuthor `json:"comments"`
}
