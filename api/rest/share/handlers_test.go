package share

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/socialhub/server/contenthub/contents"
	"codeberg.org/socialhub/server/contenthub/sharing"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://socialhub.example.com"

func newTestRouter(store *contents.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), sharing.NewRegistry(store), testBaseURL)

	return router
}

func do(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	return w
}

func TestCreateHandler_InvalidID(t *testing.T) {
	router := newTestRouter(contents.NewStore())

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		w := do(router, "POST", "/api/share/"+id)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}
}

func TestCreateHandler_UnknownRecord(t *testing.T) {
	router := newTestRouter(contents.NewStore())

	w := do(router, "POST", "/api/share/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateHandler_PendingRecord(t *testing.T) {
	store := contents.NewStore()
	record := store.Create("주제", contents.TypeInfo, "s1")

	router := newTestRouter(store)

	w := do(router, "POST", "/api/share/1")

	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "content_not_generated", resp.Error)

	// the record is untouched
	got, _ := store.Get(record.ID)
	assert.False(t, got.IsPublic)
}

func TestCreateHandler_Success(t *testing.T) {
	store := contents.NewStore()
	record := store.Create("후기 주제", contents.TypeReview, "s1")
	store.AttachGeneratedContent(record.ID, "후기 내용")

	router := newTestRouter(store)

	w := do(router, "POST", "/api/share/1")

	require.Equal(t, http.StatusOK, w.Code)

	var resp CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, strings.HasPrefix(resp.ShareID, "share_"))
	assert.Equal(t, testBaseURL+"/share/"+resp.ShareID, resp.ShareURL)
}

func TestSharedHandler_RoundTrip(t *testing.T) {
	store := contents.NewStore()
	record := store.Create("후기 주제", contents.TypeReview, "s1")
	store.AttachGeneratedContent(record.ID, "후기 내용")

	router := newTestRouter(store)

	w := do(router, "POST", "/api/share/1")
	require.Equal(t, http.StatusOK, w.Code)

	var created CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(router, "GET", "/api/shared/"+created.ShareID)
	require.Equal(t, http.StatusOK, w.Code)

	var shared SharedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shared))

	assert.Equal(t, "후기 주제", shared.Topic)
	assert.Equal(t, "review", shared.ContentType)
	assert.Equal(t, "후기 내용", shared.Content)
	assert.Equal(t, record.CreatedAt.Unix(), shared.CreatedAt.Unix())
}

func TestSharedHandler_UnknownShareID(t *testing.T) {
	router := newTestRouter(contents.NewStore())

	w := do(router, "GET", "/api/shared/share_never_minted")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSharedHandler_NeverPublicRecord(t *testing.T) {
	store := contents.NewStore()
	record := store.Create("주제", contents.TypeInfo, "s1")
	store.AttachGeneratedContent(record.ID, "내용")

	router := newTestRouter(store)

	// generated but never shared; no share id resolves to it
	w := do(router, "GET", "/api/shared/share_guess")

	assert.Equal(t, http.StatusNotFound, w.Code)

	got, _ := store.Get(record.ID)
	assert.False(t, got.IsPublic)
}
