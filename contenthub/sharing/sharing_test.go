package sharing

import (
	"strings"
	"testing"

	"codeberg.org/socialhub/server/contenthub/contents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *contents.Store) {
	t.Helper()

	store := contents.NewStore()

	return NewRegistry(store), store
}

func TestCreateShareID_UnknownRecord(t *testing.T) {
	registry, _ := newTestRegistry(t)

	_, err := registry.CreateShareID(42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateShareID_PendingRecord(t *testing.T) {
	registry, store := newTestRegistry(t)
	record := store.Create("카페 추천", contents.TypeInfo, "s1")

	_, err := registry.CreateShareID(record.ID)

	require.ErrorIs(t, err, ErrNotGenerated)

	// the failed share attempt must not mutate the record
	got, _ := store.Get(record.ID)
	assert.False(t, got.IsPublic)
	assert.Empty(t, got.ShareID)

	// and no share id resolves to it
	_, err = registry.Resolve("share_anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateShareID_Success(t *testing.T) {
	registry, store := newTestRegistry(t)
	record := store.Create("후기 주제", contents.TypeReview, "s1")
	store.AttachGeneratedContent(record.ID, "후기 내용")

	shareID, err := registry.CreateShareID(record.ID)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(shareID, "share_"))

	got, _ := store.Get(record.ID)
	assert.True(t, got.IsPublic)
	assert.Equal(t, shareID, got.ShareID)
}

func TestResolve_RoundTrip(t *testing.T) {
	registry, store := newTestRegistry(t)
	record := store.Create("후기 주제", contents.TypeReview, "s1")
	store.AttachGeneratedContent(record.ID, "후기 내용")

	shareID, err := registry.CreateShareID(record.ID)
	require.NoError(t, err)

	resolved, err := registry.Resolve(shareID)

	require.NoError(t, err)
	assert.Equal(t, record.ID, resolved.ID)
	assert.Equal(t, "후기 주제", resolved.Topic)
	assert.Equal(t, contents.TypeReview, resolved.ContentType)
	assert.Equal(t, "후기 내용", resolved.GeneratedContent)
	assert.Equal(t, record.CreatedAt, resolved.CreatedAt)
	assert.True(t, resolved.IsPublic)
}

func TestResolve_UnknownShareID(t *testing.T) {
	registry, store := newTestRegistry(t)
	record := store.Create("주제", contents.TypeInfo, "s1")
	store.AttachGeneratedContent(record.ID, "내용")

	_, err := registry.Resolve("share_never_minted")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_EmptyShareID(t *testing.T) {
	registry, store := newTestRegistry(t)

	// a pending record carries an empty share id; an empty lookup must not
	// match it
	store.Create("주제", contents.TypeInfo, "s1")

	_, err := registry.Resolve("")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateShareID_TwiceKeepsLatest(t *testing.T) {
	registry, store := newTestRegistry(t)
	record := store.Create("주제", contents.TypeInfo, "s1")
	store.AttachGeneratedContent(record.ID, "내용")

	first, err := registry.CreateShareID(record.ID)
	require.NoError(t, err)

	second, err := registry.CreateShareID(record.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// only the newest id is retrievable; the earlier one orphans
	resolved, err := registry.Resolve(second)
	require.NoError(t, err)
	assert.Equal(t, record.ID, resolved.ID)

	_, err = registry.Resolve(first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewShareID_Format(t *testing.T) {
	id, err := newShareID()

	require.NoError(t, err)

	parts := strings.SplitN(id, "_", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "share", parts[0])
	assert.Len(t, parts[2], shareIDRandomLength)
}

func TestNewShareID_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := newShareID()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate share id %s", id)
		seen[id] = true
	}
}
