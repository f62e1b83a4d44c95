package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/domain/mocks"
	"github.com/Guyuepp/feed-engagement/internal/rest"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := rest.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type deps struct {
	likes    *mocks.LikeUsecase
	posts    *mocks.PostUsecase
	comments *mocks.CommentUsecase
	users    *mocks.UserUsecase
	views    *mocks.ViewAssembler
}

func setupRouter() (*gin.Engine, *deps) {
	d := &deps{
		likes:    new(mocks.LikeUsecase),
		posts:    new(mocks.PostUsecase),
		comments: new(mocks.CommentUsecase),
		users:    new(mocks.UserUsecase),
		views:    new(mocks.ViewAssembler),
	}
	r := gin.New()
	rest.RegisterRoutes(r, rest.Handlers{
		Like:    rest.NewLikeHandler(d.likes, d.views),
		Post:    rest.NewPostHandler(d.posts, d.views),
		Comment: rest.NewCommentHandler(d.comments, d.views),
		User:    rest.NewUserHandler(d.users),
	})
	return r, d
}

func doJSON(r http.Handler, method, path, uid string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("X-User-ID", uid)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLikeHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, d := setupRouter()
		like := domain.Like{ID: 3, UserID: 4, Target: domain.CommentRef(5), CreatedAt: time.Now()}
		d.likes.On("Like", mock.Anything, int64(4), domain.CommentRef(5)).Return(like, nil).Once()

		w := doJSON(r, http.MethodPost, "/likes", "4", gin.H{"content_type": "comment", "object_id": 5})

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "comment", body["content_type"])
		assert.EqualValues(t, 5, body["object_id"])
		d.likes.AssertExpectations(t)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		r, d := setupRouter()
		w := doJSON(r, http.MethodPost, "/likes", "", gin.H{"content_type": "post", "object_id": 1})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		d.likes.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		r, d := setupRouter()
		w := doJSON(r, http.MethodPost, "/likes", "4", gin.H{"content_type": "photo", "object_id": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		d.likes.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing object id", func(t *testing.T) {
		r, _ := setupRouter()
		w := doJSON(r, http.MethodPost, "/likes", "4", gin.H{"content_type": "post"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		r, d := setupRouter()
		d.likes.On("Like", mock.Anything, int64(4), domain.PostRef(1)).
			Return(domain.Like{}, domain.ErrStorageUnavailable).Once()

		w := doJSON(r, http.MethodPost, "/likes", "4", gin.H{"content_type": "post", "object_id": 1})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("malformed identity header", func(t *testing.T) {
		r, _ := setupRouter()
		w := doJSON(r, http.MethodPost, "/likes", "abc", gin.H{"content_type": "post", "object_id": 1})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLikeHandler_Cancel(t *testing.T) {
	r, d := setupRouter()
	d.likes.On("Cancel", mock.Anything, int64(4), domain.PostRef(12)).Return(false, nil).Once()

	w := doJSON(r, http.MethodPost, "/likes/cancel", "4", gin.H{"content_type": "post", "object_id": 12})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"deleted":false}`, w.Body.String())
	d.likes.AssertExpectations(t)
}

func TestLikeHandler_List(t *testing.T) {
	r, d := setupRouter()
	d.views.On("Likes", mock.Anything, domain.PostRef(12), rest.DefaultLikeListNum).Return([]domain.LikeView{
		{ID: 2, User: domain.User{ID: 9, Name: "viewer"}, CreatedAt: time.Now()},
	}, nil).Once()

	w := doJSON(r, http.MethodGet, "/likes?content_type=post&object_id=12", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Likes []struct {
			ID   int64 `json:"id"`
			User struct {
				ID int64 `json:"id"`
			} `json:"user"`
		} `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Likes, 1)
	assert.Equal(t, int64(9), body.Likes[0].User.ID)
	d.views.AssertExpectations(t)
}

func TestPostHandler_GetByID(t *testing.T) {
	t.Run("viewer sees has_liked", func(t *testing.T) {
		r, d := setupRouter()
		d.views.On("Post", mock.Anything, int64(12), int64(4), true).Return(domain.PostView{
			ID: 12, User: domain.User{ID: 7}, LikesCount: 2, HasLiked: true,
		}, nil).Once()

		w := doJSON(r, http.MethodGet, "/posts/12", "4", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["has_liked"])
		assert.EqualValues(t, 2, body["likes_count"])
	})

	t.Run("not found", func(t *testing.T) {
		r, d := setupRouter()
		d.views.On("Post", mock.Anything, int64(13), int64(0), true).Return(domain.PostView{}, domain.ErrNotFound).Once()

		w := doJSON(r, http.MethodGet, "/posts/13", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		r, _ := setupRouter()
		w := doJSON(r, http.MethodGet, "/posts/abc", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	r, d := setupRouter()
	d.comments.On("Delete", mock.Anything, int64(5), int64(4)).Return(domain.ErrForbidden).Once()

	w := doJSON(r, http.MethodDelete, "/comments/5", "4", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	d.comments.AssertExpectations(t)
}

func TestUserHandler_Rename(t *testing.T) {
	r, d := setupRouter()
	d.users.On("Rename", mock.Anything, int64(4), "Ann").Return(domain.User{ID: 4, Name: "Ann"}, nil).Once()

	w := doJSON(r, http.MethodPut, "/users/me", "4", gin.H{"name": "Ann"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Ann"`)
	d.users.AssertExpectations(t)
}
