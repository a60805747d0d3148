package interactions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	rec := New("q", "a")
	assert.NotEmpty(t, rec.ID)
	_, err := time.ParseInLocation(TimeFormat, rec.Timestamp, time.Local)
	assert.NoError(t, err)
}

func TestFileStore_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "interactions.json"))

	require.NoError(t, store.Append(ctx, New("first", "one")))
	require.NoError(t, store.Append(ctx, New("second", "two")))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Question)
	assert.Equal(t, "two", list[1].Answer)
}

func TestFileStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactions.json")
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), Interaction{
		ID: "ignored", Timestamp: "2024-05-01T10:00:00.000000", Question: "¿Qué tal?", Answer: "Bien <3",
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "[\n    {\n        \"timestamp\": \"2024-05-01T10:00:00.000000\",\n        \"question\": \"¿Qué tal?\",\n        \"answer\": \"Bien <3\"\n    }\n]\n"
	assert.Equal(t, want, string(raw))
}

func TestFileStore_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), New("q", "a")))

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFileStore_MissingFileListsEmpty(t *testing.T) {
	list, err := NewFileStore(filepath.Join(t.TempDir(), "none.json")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestFileStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "interactions.json"))

	const n = 25
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, New(fmt.Sprintf("q%d", i), "a")))
		}()
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)

	seen := map[string]bool{}
	for _, rec := range list {
		seen[rec.Question] = true
	}
	assert.Len(t, seen, n)
	require.NoError(t, store.Close(ctx))
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	store, err := NewMongoStore(ctx, uri, "mindful_test_"+New("", "").ID)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.collection.Database().Drop(ctx)
		_ = store.Close(ctx)
	})

	require.NoError(t, store.Append(ctx, New("q1", "a1")))
	require.NoError(t, store.Append(ctx, New("q2", "a2")))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "q1", list[0].Question)
}
