package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"loanflow.backend/pkg/redis"
)

// ListViewState is the filter/sort/page state of a list view. It is an
// immutable value: clients round-trip it through the querystring, and
// the redis store below is the single persistence boundary for
// restoring it across navigation.
type ListViewState struct {
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
	SortField     string `json:"sortField"`
	SortDirection string `json:"sortDirection"`
	Search        string `json:"search"`
	Status        string `json:"status"`
}

// DefaultListViewState is the state a list view opens with.
func DefaultListViewState() ListViewState {
	return ListViewState{Page: 1, Limit: 10, SortDirection: "desc"}
}

// ParseViewState builds a view state from query values, falling back to
// defaults for absent or malformed parameters.
func ParseViewState(values url.Values) ListViewState {
	state := DefaultListViewState()

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		state.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		state.Limit = limit
	}
	if v := values.Get("sortField"); v != "" {
		state.SortField = v
	}
	if v := values.Get("sortDirection"); v == "asc" || v == "desc" {
		state.SortDirection = v
	}
	state.Search = values.Get("search")
	state.Status = values.Get("status")

	return state
}

// Query serializes the state back to query values. Zero-value fields
// are omitted so URLs stay short.
func (s ListViewState) Query() url.Values {
	values := url.Values{}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	if s.Limit > 0 && s.Limit != 10 {
		values.Set("limit", strconv.Itoa(s.Limit))
	}
	if s.SortField != "" {
		values.Set("sortField", s.SortField)
	}
	if s.SortDirection != "" && s.SortDirection != "desc" {
		values.Set("sortDirection", s.SortDirection)
	}
	if s.Search != "" {
		values.Set("search", s.Search)
	}
	if s.Status != "" {
		values.Set("status", s.Status)
	}
	return values
}

// viewStateTTL keeps abandoned view state from accumulating.
const viewStateTTL = 24 * time.Hour

// ViewStateStore persists list view state per user and view in redis.
type ViewStateStore struct{}

func NewViewStateStore() *ViewStateStore {
	return &ViewStateStore{}
}

func viewStateKey(userID uuid.UUID, view string) string {
	return fmt.Sprintf("view_state:%s:%s", userID, view)
}

// Save stores the state for a user's view.
func (s *ViewStateStore) Save(ctx context.Context, userID uuid.UUID, view string, state ListViewState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return redis.Set(ctx, viewStateKey(userID, view), payload, viewStateTTL)
}

// Load restores the state for a user's view. Absent or malformed
// entries degrade to the default state.
func (s *ViewStateStore) Load(ctx context.Context, userID uuid.UUID, view string) ListViewState {
	raw, err := redis.Get(ctx, viewStateKey(userID, view))
	if err != nil || raw == "" {
		return DefaultListViewState()
	}

	var state ListViewState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return DefaultListViewState()
	}
	if state.Page < 1 {
		state.Page = 1
	}
	return state
}
