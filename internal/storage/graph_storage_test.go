package storage

import (
	"context"
	"errors"
	"testing"

	"MemoryStoryAgent/internal/models"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGraph struct {
	records []*neo4j.Record
	runErr  error

	opened  int
	closed  int
	queries []string
	params  []map[string]any
}

func (f *fakeGraph) open(_ context.Context) graphSession {
	f.opened++
	return &fakeGraphSession{graph: f}
}

type fakeGraphSession struct {
	graph *fakeGraph
}

func (s *fakeGraphSession) Run(_ context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	s.graph.queries = append(s.graph.queries, cypher)
	s.graph.params = append(s.graph.params, params)
	if s.graph.runErr != nil {
		return nil, s.graph.runErr
	}
	return s.graph.records, nil
}

func (s *fakeGraphSession) Close(_ context.Context) error {
	s.graph.closed++
	return nil
}

func newFakeGraphStore(f *fakeGraph) *GraphStore {
	return &GraphStore{open: f.open}
}

func validProfile() models.UserProfile {
	return models.UserProfile{
		Email:              "mina@example.com",
		Age:                31,
		CulturalBackground: "Korean",
		Language:           "Korean",
		Gender:             "female",
		Country:            "South Korea",
	}
}

func TestGraphStore_GetUserMetadata(t *testing.T) {
	graph := &fakeGraph{records: []*neo4j.Record{{
		Keys:   []string{"culturalBackground", "language"},
		Values: []any{"Mexican", "Spanish"},
	}}}
	store := newFakeGraphStore(graph)

	meta, err := store.GetUserMetadata(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.UserMetadata{CulturalBackground: "Mexican", Language: "Spanish"}, meta)
	assert.Equal(t, "user-1", graph.params[0]["userID"])
	assert.Equal(t, 1, graph.opened)
	assert.Equal(t, 1, graph.closed)
}

func TestGraphStore_GetUserMetadataNullLanguage(t *testing.T) {
	graph := &fakeGraph{records: []*neo4j.Record{{
		Keys:   []string{"culturalBackground", "language"},
		Values: []any{"Irish", nil},
	}}}

	meta, err := newFakeGraphStore(graph).GetUserMetadata(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "", meta.Language)
}

func TestGraphStore_GetUserMetadataNotFound(t *testing.T) {
	graph := &fakeGraph{}

	_, err := newFakeGraphStore(graph).GetUserMetadata(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, graph.opened, graph.closed)
}

func TestGraphStore_RunFailureIsUnavailable(t *testing.T) {
	graph := &fakeGraph{runErr: errors.New("connection reset")}
	store := newFakeGraphStore(graph)
	ctx := context.Background()

	_, err := store.GetUserMetadata(ctx, "user-1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.CreateProfile(ctx, validProfile())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.FindUserIDByEmail(ctx, "mina@example.com")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.Equal(t, 3, graph.opened)
	assert.Equal(t, 3, graph.closed)
}

func TestGraphStore_CreateProfile(t *testing.T) {
	graph := &fakeGraph{}
	store := newFakeGraphStore(graph)

	userID, err := store.CreateProfile(context.Background(), validProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	params := graph.params[0]
	assert.Equal(t, userID, params["userID"])
	assert.Equal(t, "mina@example.com", params["email"])
	assert.Equal(t, int64(31), params["age"])
	assert.Equal(t, "South Korea", params["country"])
	assert.Equal(t, 1, graph.closed)
}

func TestGraphStore_CreateProfileValidation(t *testing.T) {
	graph := &fakeGraph{}
	profile := validProfile()
	profile.Country = ""

	_, err := newFakeGraphStore(graph).CreateProfile(context.Background(), profile)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, graph.opened, "validation must fail before a session is opened")
}

func TestGraphStore_FindUserIDByEmail(t *testing.T) {
	graph := &fakeGraph{records: []*neo4j.Record{{
		Keys:   []string{"userID"},
		Values: []any{"user-42"},
	}}}

	userID, err := newFakeGraphStore(graph).FindUserIDByEmail(context.Background(), "mina@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
	assert.Equal(t, 1, graph.closed)
}

func TestGraphStore_FindUserIDByEmailNotFound(t *testing.T) {
	graph := &fakeGraph{}

	_, err := newFakeGraphStore(graph).FindUserIDByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, graph.closed)
}
