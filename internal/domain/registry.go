// Package domain defines the business logic for the activity signup service.
package domain

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrActivityNotFound is returned when an activity name is absent from the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the participant is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp indicates the participant is not on the activity roster.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)

// Registry owns the canonical name -> Activity mapping. All access goes through
// its methods; a single mutex makes each operation atomic to concurrent callers.
type Registry struct {
	mu         sync.Mutex
	activities map[string]Activity
}

// NewRegistry validates the seed catalog and builds a Registry over a private copy
// of it. Rosters must not contain duplicates and max participants must be positive.
func NewRegistry(seed map[string]Activity) (*Registry, error) {
	activities := make(map[string]Activity, len(seed))
	for name, activity := range seed {
		if name == "" {
			return nil, errors.New("activity name must not be empty")
		}
		if activity.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max participants must be positive", name)
		}
		seen := make(map[string]struct{}, len(activity.Participants))
		for _, email := range activity.Participants {
			if email == "" {
				return nil, fmt.Errorf("activity %q: empty participant id", name)
			}
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", name, email)
			}
			seen[email] = struct{}{}
		}
		activities[name] = activity.clone()
	}
	return &Registry{activities: activities}, nil
}

// List returns a snapshot of every activity. Callers never hold references into
// the registry; mutating the result has no effect on registry state.
func (r *Registry) List() map[string]Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.clone()
	}
	return out
}

// Enroll appends email to the activity's roster, preserving insertion order.
// There is no capacity check: rosters may grow past MaxParticipants.
func (r *Registry) Enroll(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	if activity.hasParticipant(email) {
		return ErrAlreadySignedUp
	}
	activity.Participants = append(activity.Participants, email)
	r.activities[activityName] = activity
	return nil
}

// Withdraw removes email from the activity's roster, leaving the relative order
// of the remaining participants untouched.
func (r *Registry) Withdraw(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			r.activities[activityName] = activity
			return nil
		}
	}
	return ErrNotSignedUp
}
