package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/gin-gonic/gin"
	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/chandemahtab/blog-api/internal/web/blog/dao"
	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
	"github.com/chandemahtab/blog-api/internal/web/blog/service"
	"github.com/chandemahtab/blog-api/library/auth"
	"github.com/chandemahtab/blog-api/library/jwt"
	"github.com/chandemahtab/blog-api/library/log"
	"github.com/chandemahtab/blog-api/library/throttle"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := jwt.Initialize([]byte("test-secret")); err != nil {
		panic(err)
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.Blog) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	limiter, err := throttle.NewMemoryLimiter(3, time.Hour)
	require.NoError(t, err)

	svc := service.New(log.Logger.Named("test"),
		dao.New(log.Logger.Named("test_dao"), db),
		limiter, nil, nil)
	ctl := New(svc)

	engine := gin.New()
	api := engine.Group("/api")
	api.GET("/posts", ctl.ListPosts)
	api.GET("/posts/:slug", ctl.GetPost)
	api.GET("/posts/:slug/comments", ctl.ListComments)
	api.POST("/comments", ctl.CreateComment)
	api.GET("/search", ctl.Search)
	api.GET("/settings", ctl.GetSettings)

	admin := api.Group("/admin")
	admin.POST("/login", ctl.Login)
	admin.POST("/logout", ctl.Logout)

	guarded := admin.Group("", auth.AdminRequired())
	guarded.GET("/posts", ctl.AdminListPosts)
	guarded.POST("/posts", ctl.AdminCreatePost)
	guarded.GET("/posts/:id", ctl.AdminGetPost)
	guarded.PUT("/posts/:id", ctl.AdminUpdatePost)
	guarded.DELETE("/posts/:id", ctl.AdminDeletePost)
	guarded.GET("/comments", ctl.AdminListComments)
	guarded.PUT("/comments/:id/approve", ctl.AdminApproveComment)
	guarded.DELETE("/comments/:id", ctl.AdminDeleteComment)
	guarded.POST("/settings", ctl.UpdateSettings)

	return engine, svc
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func adminCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}

	t.Fatal("admin cookie not set")
	return nil
}

func seedPublishedPost(t *testing.T, svc *service.Blog, title string) *model.Post {
	t.Helper()

	post, err := svc.NewPost(context.Background(), &dto.PostInput{
		TitleEn:   title,
		Content:   "Body of " + title,
		Published: true,
	})
	require.NoError(t, err)
	return post
}

func TestLoginWrongPassword(t *testing.T) {
	engine, _ := newTestRouter(t)
	gconfig.Shared.Set("settings.admin_password", "correct-horse")

	rec := doJSON(t, engine, http.MethodPost, "/api/admin/login",
		gin.H{"password": "battery-staple"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestLoginAndAdminAccess(t *testing.T) {
	engine, _ := newTestRouter(t)
	gconfig.Shared.Set("settings.admin_password", "correct-horse")

	// unauthenticated admin request is rejected
	rec := doJSON(t, engine, http.MethodGet, "/api/admin/posts", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/admin/login",
		gin.H{"password": "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := adminCookie(t, rec)
	require.True(t, cookie.HttpOnly)
	require.NotEmpty(t, cookie.Value)

	rec = doJSON(t, engine, http.MethodGet, "/api/admin/posts", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginGarbageCookieRejected(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/admin/comments", nil,
		&http.Cookie{Name: auth.CookieName, Value: "not-a-jwt"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	engine, _ := newTestRouter(t)

	issued := time.Now().Add(-48 * time.Hour)
	token, err := jwt.Instance.Sign(&jwt.AdminClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			IssuedAt:  jwtLib.NewNumericDate(issued),
			ExpiresAt: jwtLib.NewNumericDate(issued.Add(auth.TokenExpire)),
		},
		IsAdmin:   true,
		LoginTime: issued.UnixMilli(),
	})
	require.NoError(t, err)

	rec := doJSON(t, engine, http.MethodGet, "/api/admin/posts", nil,
		&http.Cookie{Name: auth.CookieName, Value: token})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateComment(t *testing.T) {
	engine, svc := newTestRouter(t)
	post := seedPublishedPost(t, svc, "First Post")

	rec := doJSON(t, engine, http.MethodPost, "/api/comments", gin.H{
		"postId":  post.ID,
		"name":    "Al",
		"content": "Great post, thanks!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message   string `json:"message"`
		CommentID string `json:"commentId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.CommentID)
}

func TestCreateCommentValidationError(t *testing.T) {
	engine, svc := newTestRouter(t)
	post := seedPublishedPost(t, svc, "First Post")

	rec := doJSON(t, engine, http.MethodPost, "/api/comments", gin.H{
		"postId":  post.ID,
		"name":    "A",
		"content": "Great post, thanks!",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCommentRateLimited(t *testing.T) {
	engine, svc := newTestRouter(t)
	post := seedPublishedPost(t, svc, "First Post")

	body := gin.H{"postId": post.ID, "name": "Al", "content": "Great post, thanks!"}
	for i := 0; i < 3; i++ {
		rec := doJSON(t, engine, http.MethodPost, "/api/comments", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, engine, http.MethodPost, "/api/comments", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestGetPostNotFound(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/posts/no-such-slug", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPostsAndGetBySlug(t *testing.T) {
	engine, svc := newTestRouter(t)
	post := seedPublishedPost(t, svc, "Hello World")

	rec := doJSON(t, engine, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), post.Slug)

	rec = doJSON(t, engine, http.MethodGet, "/api/posts/"+post.Slug, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Hello World")
}

func TestAdminPostLifecycle(t *testing.T) {
	engine, _ := newTestRouter(t)
	gconfig.Shared.Set("settings.admin_password", "correct-horse")

	rec := doJSON(t, engine, http.MethodPost, "/api/admin/login",
		gin.H{"password": "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := adminCookie(t, rec)

	rec = doJSON(t, engine, http.MethodPost, "/api/admin/posts", gin.H{
		"titleEn":   "Draft Post",
		"content":   "draft body",
		"published": false,
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var post model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	require.Equal(t, "draft-post", post.Slug)

	// draft is invisible to the public listing
	rec = doJSON(t, engine, http.MethodGet, "/api/posts/"+post.Slug, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/admin/posts/"+post.ID, gin.H{
		"titleEn":   "Draft Post",
		"content":   "draft body",
		"published": true,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/posts/"+post.Slug, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/admin/posts/"+post.ID, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/admin/posts/"+post.ID, nil, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	engine, _ := newTestRouter(t)
	gconfig.Shared.Set("settings.admin_password", "correct-horse")

	// settings endpoint returns an empty record before any save
	rec := doJSON(t, engine, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	loginRec := doJSON(t, engine, http.MethodPost, "/api/admin/login",
		gin.H{"password": "correct-horse"})
	cookie := adminCookie(t, loginRec)

	rec = doJSON(t, engine, http.MethodPost, "/api/admin/settings", gin.H{
		"aboutEn": "A bilingual blog",
		"email":   "hello@example.com",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "A bilingual blog")
}
