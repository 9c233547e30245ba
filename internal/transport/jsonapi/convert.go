package jsonapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jungguji/algo-rewind/internal/domain"
)

// problemJSON is the wire shape of a Problem.
type problemJSON struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	URL          *string  `json:"url"`
	Tags         []string `json:"tags"`
	Memo         string   `json:"memo"`
	Level        string   `json:"level"`
	CreatedAt    string   `json:"created_at"`
	NextReviewAt string   `json:"next_review_at"`
}

// wireFields are the record keys. Matching is exact: a key that differs
// only by case is rejected rather than silently folded onto a field.
var wireFields = []string{"id", "name", "url", "tags", "memo", "level", "created_at", "next_review_at"}

// problemInput holds the decoded fields of one record before validation.
type problemInput struct {
	ID           int64
	Name         string
	URL          *string
	Tags         []*string
	Memo         string
	Level        string
	CreatedAt    string
	NextReviewAt string
}

// decodeRecord parses one JSON object into a Problem. Every field except url
// is required and non-null; unknown keys are ignored.
func decodeRecord(data []byte) (domain.Problem, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Problem{}, err
	}
	if fields == nil {
		return domain.Problem{}, errNull
	}

	for key := range fields {
		for _, name := range wireFields {
			if key != name && strings.EqualFold(key, name) {
				return domain.Problem{}, fmt.Errorf("unexpected key %q, expected %q", key, name)
			}
		}
	}

	var in problemInput
	targets := []struct {
		name     string
		dst      any
		optional bool
	}{
		{"id", &in.ID, false},
		{"name", &in.Name, false},
		{"url", &in.URL, true},
		{"tags", &in.Tags, false},
		{"memo", &in.Memo, false},
		{"level", &in.Level, false},
		{"created_at", &in.CreatedAt, false},
		{"next_review_at", &in.NextReviewAt, false},
	}
	for _, t := range targets {
		raw, ok := fields[t.name]
		if !ok {
			if t.optional {
				continue
			}
			return domain.Problem{}, fmt.Errorf("missing field %q", t.name)
		}
		if isNull(raw) && !t.optional {
			return domain.Problem{}, fmt.Errorf("field %q: %w", t.name, errNull)
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return domain.Problem{}, fmt.Errorf("field %q: %w", t.name, err)
		}
	}

	return in.toDomain()
}

func (in *problemInput) toDomain() (domain.Problem, error) {
	tags := make([]string, 0, len(in.Tags))
	for i, tag := range in.Tags {
		if tag == nil {
			return domain.Problem{}, fmt.Errorf("field \"tags\": element %d: %w", i, errNull)
		}
		tags = append(tags, *tag)
	}

	// On the wire the level is exactly one of the four names.
	level := domain.Level(in.Level)
	if !level.IsValid() {
		return domain.Problem{}, fmt.Errorf("unknown level %q, expected one of AGAIN, HARD, GOOD, EASY", in.Level)
	}

	return domain.Problem{
		ID:           in.ID,
		Name:         in.Name,
		URL:          in.URL,
		Tags:         tags,
		Memo:         in.Memo,
		Level:        level,
		CreatedAt:    in.CreatedAt,
		NextReviewAt: in.NextReviewAt,
	}, nil
}

func problemToJSON(p domain.Problem) problemJSON {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return problemJSON{
		ID:           p.ID,
		Name:         p.Name,
		URL:          p.URL,
		Tags:         tags,
		Memo:         p.Memo,
		Level:        p.Level.String(),
		CreatedAt:    p.CreatedAt,
		NextReviewAt: p.NextReviewAt,
	}
}

var errNull = errors.New("expected a value, got null")

// DecodeProblem parses one encoded problem. Failures are *domain.DecodingError
// tagged with op.
func DecodeProblem(op string, data []byte) (domain.Problem, error) {
	if isNull(data) {
		return domain.Problem{}, &domain.DecodingError{Op: op, Err: errNull}
	}

	p, err := decodeRecord(data)
	if err != nil {
		return domain.Problem{}, &domain.DecodingError{Op: op, Err: err}
	}
	return p, nil
}

// DecodeProblems parses an encoded array of problems. Either every element
// decodes or the whole input is rejected.
func DecodeProblems(op string, data []byte) ([]domain.Problem, error) {
	if isNull(data) {
		return nil, &domain.DecodingError{Op: op, Err: errNull}
	}

	var in []json.RawMessage
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, &domain.DecodingError{Op: op, Err: err}
	}

	problems := make([]domain.Problem, 0, len(in))
	for i := range in {
		p, err := decodeRecord(in[i])
		if err != nil {
			return nil, &domain.DecodingError{Op: op, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// EncodeProblem renders p in the wire format.
func EncodeProblem(p domain.Problem) ([]byte, error) {
	return json.Marshal(problemToJSON(p))
}

// EncodeProblems renders problems as a JSON array; an empty or nil list
// encodes as [].
func EncodeProblems(problems []domain.Problem) ([]byte, error) {
	out := make([]problemJSON, 0, len(problems))
	for _, p := range problems {
		out = append(out, problemToJSON(p))
	}
	return json.Marshal(out)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
