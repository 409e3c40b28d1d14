package types

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// newID returns a lexicographically sortable identifier. The monotonic
// entropy source guarantees uniqueness and ordering even when IDs are
// generated within the same millisecond.
func newID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// ProjectID represents a unique identifier for a project
type ProjectID string

// NewProjectID generates a new ProjectID
func NewProjectID() ProjectID {
	return ProjectID(newID())
}

// Validate checks if the ProjectID is valid
func (i ProjectID) Validate() error {
	if i == "" {
		return goerr.New("project ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ProjectID
func (i ProjectID) String() string {
	return string(i)
}

// RiskID represents a unique identifier for a risk
type RiskID string

// NewRiskID generates a new RiskID
func NewRiskID() RiskID {
	return RiskID(newID())
}

// Validate checks if the RiskID is valid
func (i RiskID) Validate() error {
	if i == "" {
		return goerr.New("risk ID cannot be empty")
	}
	return nil
}

// String returns the string representation of RiskID
func (i RiskID) String() string {
	return string(i)
}

// UserID represents a unique identifier for a user
type UserID string

// NewUserID generates a new UserID
func NewUserID() UserID {
	return UserID(newID())
}

// Validate checks if the UserID is valid
func (i UserID) Validate() error {
	if i == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (i UserID) String() string {
	return string(i)
}

// CommentID represents a unique identifier for a risk comment
type CommentID string

// NewCommentID generates a new CommentID
func NewCommentID() CommentID {
	return CommentID(newID())
}

// String returns the string representation of CommentID
func (i CommentID) String() string {
	return string(i)
}
