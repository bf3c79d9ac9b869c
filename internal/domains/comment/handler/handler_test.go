package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/comment/model"
	"newsroom-backend/internal/domains/comment/service"
	"newsroom-backend/internal/shared/middleware"
	"newsroom-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =====================================================
// FAKE REPOSITORY
// =====================================================

type memoryCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
	posts    map[uuid.UUID]bool
}

func newMemoryRepo() *memoryCommentRepo {
	return &memoryCommentRepo{
		comments: map[uuid.UUID]*model.Comment{},
		posts:    map[uuid.UUID]bool{},
	}
}

func (r *memoryCommentRepo) Create(_ context.Context, c *model.Comment) error {
	r.comments[c.ID] = c
	return nil
}

func (r *memoryCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	return c, nil
}

func (r *memoryCommentRepo) ListApprovedByPost(_ context.Context, postID uuid.UUID) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range r.comments {
		if c.PostID == postID && c.Approved {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memoryCommentRepo) PostExists(_ context.Context, postID uuid.UUID) (bool, error) {
	return r.posts[postID], nil
}

func newRouter(repo *memoryCommentRepo, manager *jwt.Manager) *gin.Engine {
	h := NewCommentHandler(service.NewCommentService(repo))
	router := gin.New()
	router.GET("/api/v1/comments", h.ListComments)
	router.POST("/api/v1/comments/create", middleware.OptionalAuth(manager), h.CreateComment)
	return router
}

func postJSON(router *gin.Engine, path, token string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// =====================================================
// CREATE
// =====================================================

func TestCreateCommentEndpoint_Anonymous(t *testing.T) {
	repo := newMemoryRepo()
	postID := uuid.New()
	repo.posts[postID] = true

	router := newRouter(repo, jwt.NewManager("test-secret"))
	rec := postJSON(router, "/api/v1/comments/create", "", gin.H{
		"post":    postID,
		"name":    "Jamie",
		"content": "great article",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    model.CommentNode `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Jamie", resp.Data.DisplayName)
	assert.Nil(t, resp.Data.AuthorID)
	assert.NotNil(t, resp.Data.Replies)
	assert.Empty(t, resp.Data.Replies)
}

func TestCreateCommentEndpoint_AuthenticatedAuthor(t *testing.T) {
	repo := newMemoryRepo()
	postID := uuid.New()
	repo.posts[postID] = true

	manager := jwt.NewManager("test-secret")
	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID.String(), "editor42")
	require.NoError(t, err)

	router := newRouter(repo, manager)
	rec := postJSON(router, "/api/v1/comments/create", token, gin.H{
		"post":    postID,
		"content": "signed comment",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data model.CommentNode `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.AuthorID)
	assert.Equal(t, userID, *resp.Data.AuthorID)
	assert.Equal(t, "editor42", resp.Data.DisplayName)
}

func TestCreateCommentEndpoint_InvalidTokenFallsBackToAnonymous(t *testing.T) {
	repo := newMemoryRepo()
	postID := uuid.New()
	repo.posts[postID] = true

	router := newRouter(repo, jwt.NewManager("test-secret"))
	rec := postJSON(router, "/api/v1/comments/create", "garbage-token", gin.H{
		"post":    postID,
		"content": "still works",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data model.CommentNode `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data.AuthorID)
	assert.Equal(t, "Anonymous", resp.Data.DisplayName)
}

func TestCreateCommentEndpoint_MissingContent(t *testing.T) {
	repo := newMemoryRepo()
	postID := uuid.New()
	repo.posts[postID] = true

	router := newRouter(repo, jwt.NewManager("test-secret"))
	rec := postJSON(router, "/api/v1/comments/create", "", gin.H{
		"post": postID,
		"name": "Jamie",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCommentEndpoint_UnknownPost(t *testing.T) {
	repo := newMemoryRepo()

	router := newRouter(repo, jwt.NewManager("test-secret"))
	rec := postJSON(router, "/api/v1/comments/create", "", gin.H{
		"post":    uuid.New(),
		"content": "into the void",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, model.ErrCodePostNotFound, resp.Error.Code)
}

// =====================================================
// LIST
// =====================================================

func TestListCommentsEndpoint(t *testing.T) {
	repo := newMemoryRepo()
	postID := uuid.New()
	repo.posts[postID] = true
	existing := &model.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		Name:      "Jamie",
		Content:   "hello",
		Approved:  true,
		CreatedAt: time.Now(),
	}
	repo.comments[existing.ID] = existing

	router := newRouter(repo, jwt.NewManager("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments?post="+postID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    []model.CommentNode `json:"data"`
		Meta    struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestListCommentsEndpoint_BadPostID(t *testing.T) {
	router := newRouter(newMemoryRepo(), jwt.NewManager("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments?post=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
