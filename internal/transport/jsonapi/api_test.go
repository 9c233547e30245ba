package jsonapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/problem"
)

func newTestAPI(now time.Time) *API {
	clock := func() time.Time { return now }
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(problem.NewService(log, problem.NewIDGenerator(clock), clock))
}

const listJSON = `[
  {"id":1,"name":"Two Sum","url":"https://leetcode.com/problems/two-sum/","tags":["array","hash"],"memo":"","level":"GOOD","created_at":"2025-10-01","next_review_at":"2025-11-02"},
  {"id":2,"name":"LRU Cache","url":null,"tags":["design"],"memo":"","level":"HARD","created_at":"2025-10-05","next_review_at":"2025-11-05"},
  {"id":3,"name":"Coin Change","tags":["DP"],"memo":"knapsack","level":"AGAIN","created_at":"2025-10-03","next_review_at":"2025-10-30"}
]`

func decodeIDs(t *testing.T, out string) []int64 {
	t.Helper()
	var list []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestAPI_AddProblem(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	api := newTestAPI(now)
	url := "https://leetcode.com/problems/lru-cache/"

	out, err := api.AddProblem("LRU Cache", &url, []string{"design", "linked-list"}, "**doubly linked**", "good")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, float64(now.UnixMilli()), got["id"])
	assert.Equal(t, "LRU Cache", got["name"])
	assert.Equal(t, url, got["url"])
	assert.Equal(t, []any{"design", "linked-list"}, got["tags"])
	assert.Equal(t, "**doubly linked**", got["memo"])
	assert.Equal(t, "GOOD", got["level"])
	assert.Equal(t, "2025-11-02", got["created_at"])
	assert.Equal(t, "2025-11-09", got["next_review_at"])
}

func TestAPI_AddProblem_NullURLAndEmptyTags(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC))

	out, err := api.AddProblem("", nil, nil, "", "again")
	require.NoError(t, err)

	assert.Contains(t, out, `"url":null`)
	assert.Contains(t, out, `"tags":[]`)
	assert.Contains(t, out, `"next_review_at":"2025-11-03"`)
}

func TestAPI_AddProblem_InvalidLevel(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	out, err := api.AddProblem("x", nil, nil, "", "normal")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
	assert.False(t, errors.Is(err, domain.ErrDecoding))
	assert.Contains(t, err.Error(), "normal")
}

func TestAPI_GetTodayReviews(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	out, err := api.GetTodayReviews(listJSON, "2025-11-02")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, decodeIDs(t, out))
}

func TestAPI_GetTodayReviews_EmptyList(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	out, err := api.GetTodayReviews("[]", "2025-11-02")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = api.GetTodayReviews(listJSON, "2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestAPI_GetTodayReviews_PreservesRecords(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	out, err := api.GetTodayReviews(listJSON, "2025-10-30")
	require.NoError(t, err)

	want := `[{"id":3,"name":"Coin Change","url":null,"tags":["DP"],"memo":"knapsack","level":"AGAIN","created_at":"2025-10-03","next_review_at":"2025-10-30"}]`
	assert.JSONEq(t, want, out)
}

func TestAPI_UpdateReview(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Date(2025, 11, 9, 8, 0, 0, 0, time.UTC))
	in := `{"id":1762041600000,"name":"LRU Cache","url":null,"tags":["design"],"memo":"m","level":"GOOD","created_at":"2025-11-02","next_review_at":"2025-11-09"}`

	out, err := api.UpdateReview(in, "easy")
	require.NoError(t, err)

	want := `{"id":1762041600000,"name":"LRU Cache","url":null,"tags":["design"],"memo":"m","level":"EASY","created_at":"2025-11-02","next_review_at":"2025-12-09"}`
	assert.JSONEq(t, want, out)
}

func TestAPI_UpdateReview_Errors(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())
	valid := `{"id":1,"name":"a","url":null,"tags":[],"memo":"","level":"GOOD","created_at":"2025-11-02","next_review_at":"2025-11-09"}`

	tests := []struct {
		name     string
		problem  string
		level    string
		wantKind error
	}{
		{"invalid level", valid, "SOSO", domain.ErrInvalidLevel},
		{"malformed json", `{"id":1,`, "GOOD", domain.ErrDecoding},
		{"malformed json wins over bad level", `not json`, "SOSO", domain.ErrDecoding},
		{"array instead of object", `[]`, "GOOD", domain.ErrDecoding},
		{"null", `null`, "GOOD", domain.ErrDecoding},
		{"missing field", `{"id":1,"name":"a","tags":[],"memo":"","level":"GOOD","created_at":"2025-11-02"}`, "GOOD", domain.ErrDecoding},
		{"lower-case level on the wire", `{"id":1,"name":"a","tags":[],"memo":"","level":"good","created_at":"2025-11-02","next_review_at":"2025-11-09"}`, "GOOD", domain.ErrDecoding},
		{"string id", `{"id":"1","name":"a","tags":[],"memo":"","level":"GOOD","created_at":"2025-11-02","next_review_at":"2025-11-09"}`, "GOOD", domain.ErrDecoding},
		{"keys in the wrong case", `{"ID":1,"NAME":"a","Tags":["x"],"MEMO":"","LEVEL":"GOOD","Created_At":"2025-11-02","NEXT_REVIEW_AT":"2025-11-09"}`, "GOOD", domain.ErrDecoding},
		{"one key in the wrong case", `{"id":1,"name":"a","tags":[],"Memo":"","memo":"","level":"GOOD","created_at":"2025-11-02","next_review_at":"2025-11-09"}`, "GOOD", domain.ErrDecoding},
		{"null tag element", `{"id":1,"name":"a","tags":["x",null],"memo":"","level":"GOOD","created_at":"2025-11-02","next_review_at":"2025-11-09"}`, "GOOD", domain.ErrDecoding},
		{"null required field", `{"id":1,"name":null,"tags":[],"memo":"","level":"GOOD","created_at":"2025-11-02","next_review_at":"2025-11-09"}`, "GOOD", domain.ErrDecoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := api.UpdateReview(tt.problem, tt.level)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestAPI_UpdateReview_DecodingErrorCarriesOp(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	_, err := api.UpdateReview("{", "GOOD")

	var decErr *domain.DecodingError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, OpUpdateReview, decErr.Op)
}

func TestAPI_UpdateReview_MalformedDatesAreKept(t *testing.T) {
	t.Parallel()

	// Dates are opaque text on the wire; a bad created_at is not a decoding error.
	api := newTestAPI(time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC))
	in := `{"id":1,"name":"a","tags":[],"memo":"","level":"HARD","created_at":"yesterday","next_review_at":"soon"}`

	out, err := api.UpdateReview(in, "hard")
	require.NoError(t, err)
	assert.Contains(t, out, `"created_at":"yesterday"`)
	assert.Contains(t, out, `"next_review_at":"2025-11-12"`)
}

func TestAPI_UpdateReview_IgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC))
	in := `{"id":1,"name":"a","tags":[],"memo":"","level":"HARD","created_at":"2025-11-01","next_review_at":"2025-11-04","extra":true}`

	out, err := api.UpdateReview(in, "again")
	require.NoError(t, err)
	assert.NotContains(t, out, "extra")
}

func TestAPI_FilterProblems(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	tests := []struct {
		term string
		want []int64
	}{
		{"", []int64{1, 2, 3}},
		{"dp", []int64{3}},
		{"CACHE", []int64{2}},
		{"a", []int64{1, 2, 3}},
		{"heap", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			t.Parallel()
			out, err := api.FilterProblems(listJSON, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decodeIDs(t, out))
		})
	}
}

func TestAPI_FilterProblems_Malformed(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	_, err := api.FilterProblems(`{"id":1}`, "x")
	assert.ErrorIs(t, err, domain.ErrDecoding)

	_, err = api.FilterProblems(`null`, "x")
	assert.ErrorIs(t, err, domain.ErrDecoding)
}

func TestAPI_SortProblems(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	tests := []struct {
		criterion string
		want      []int64
	}{
		{"next_review", []int64{3, 1, 2}},
		{"created_at", []int64{2, 3, 1}},
		{"name", []int64{3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.criterion, func(t *testing.T) {
			t.Parallel()
			out, err := api.SortProblems(listJSON, tt.criterion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decodeIDs(t, out))
		})
	}
}

func TestAPI_SortProblems_Errors(t *testing.T) {
	t.Parallel()

	api := newTestAPI(time.Now())

	out, err := api.SortProblems(listJSON, "bogus")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCriterion)
	assert.False(t, errors.Is(err, domain.ErrDecoding))

	out, err = api.SortProblems(`[{"id":1}]`, "name")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrDecoding)
	assert.Contains(t, err.Error(), "element 0")
}

func TestAPI_EndToEnd(t *testing.T) {
	t.Parallel()

	created, err := newTestAPI(time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)).
		AddProblem("Word Ladder", nil, []string{"bfs"}, "", "GOOD")
	require.NoError(t, err)
	assert.Contains(t, created, `"next_review_at":"2025-11-09"`)

	later := newTestAPI(time.Date(2025, 11, 9, 12, 0, 0, 0, time.UTC))

	due, err := later.GetTodayReviews("["+created+"]", "2025-11-09")
	require.NoError(t, err)
	require.Len(t, decodeIDs(t, due), 1)

	updated, err := later.UpdateReview(created, "EASY")
	require.NoError(t, err)
	assert.Contains(t, updated, `"next_review_at":"2025-12-09"`)
	assert.Contains(t, updated, `"created_at":"2025-11-02"`)
}
