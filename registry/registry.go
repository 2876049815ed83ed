// Package registry holds the in-memory activity roster for the signup API.
//
// The registry maps activity names to activity records and supports three
// operations: List, Enroll, and Withdraw. Activity names are the identifiers;
// there are no numeric ids. The set of activities is fixed at construction
// time and only each activity's participant roster mutates afterwards.
package registry

import (
	"errors"
	"slices"
	"sync"
)

// ErrActivityNotFound is returned when the named activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadyEnrolled is returned when the email is already on the roster.
var ErrAlreadyEnrolled = errors.New("student is already signed up")

// ErrNotEnrolled is returned when the email is not on the roster.
var ErrNotEnrolled = errors.New("student is not registered for this activity")

// Activity is a single extracurricular offering.
type Activity struct {
	Description string `json:"description" yaml:"description"`
	Schedule    string `json:"schedule" yaml:"schedule"`
	// MaxParticipants is informational only; Enroll does not enforce it.
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Registry is the process-wide collection of activities, keyed by name.
// All operations are safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	activities map[string]*Activity
}

// New creates a Registry from the given seed. The seed is copied, so callers
// may reuse or mutate their map afterwards.
func New(seed map[string]Activity) *Registry {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		copied := act
		copied.Participants = slices.Clone(act.Participants)
		if copied.Participants == nil {
			copied.Participants = []string{}
		}
		activities[name] = &copied
	}
	return &Registry{activities: activities}
}

// List returns a snapshot of all activities. Mutating the result does not
// affect the registry.
func (r *Registry) List() map[string]Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		copied := *act
		copied.Participants = slices.Clone(act.Participants)
		result[name] = copied
	}
	return result
}

// Activity returns a snapshot of the named activity.
func (r *Registry) Activity(name string) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	copied := *act
	copied.Participants = slices.Clone(act.Participants)
	return copied, nil
}

// Participants returns a copy of the roster for the named activity.
func (r *Registry) Participants(name string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return slices.Clone(act.Participants), nil
}

// Enroll appends email to the named activity's roster.
// Returns ErrActivityNotFound if the activity does not exist and
// ErrAlreadyEnrolled if the email is already on the roster.
// Capacity is never checked: an activity can be enrolled past
// MaxParticipants.
func (r *Registry) Enroll(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if slices.Contains(act.Participants, email) {
		return ErrAlreadyEnrolled
	}

	act.Participants = append(act.Participants, email)
	return nil
}

// Withdraw removes email from the named activity's roster, preserving the
// relative order of the remaining participants.
// Returns ErrActivityNotFound if the activity does not exist and
// ErrNotEnrolled if the email is not on the roster.
func (r *Registry) Withdraw(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	idx := slices.Index(act.Participants, email)
	if idx < 0 {
		return ErrNotEnrolled
	}

	act.Participants = slices.Delete(act.Participants, idx, idx+1)
	return nil
}
