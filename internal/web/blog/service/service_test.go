package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/chandemahtab/blog-api/internal/web/blog/dao"
	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
	"github.com/chandemahtab/blog-api/library/log"
	"github.com/chandemahtab/blog-api/library/throttle"
)

// stubModerator returns a fixed decision or error.
type stubModerator struct {
	approve bool
	err     error
	called  int
}

func (m *stubModerator) ModerateComment(_ context.Context, _ string) (bool, error) {
	m.called++
	return m.approve, m.err
}

func newTestService(t *testing.T, moderator Moderator) (*Blog, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	limiter, err := throttle.NewMemoryLimiter(3, time.Hour)
	require.NoError(t, err)

	d := dao.New(log.Logger.Named("test_dao"), db)
	return New(log.Logger.Named("test"), d, limiter, moderator, defaultBadWords), db
}

func seedPost(t *testing.T, svc *Blog, title string, published bool) *model.Post {
	t.Helper()

	post, err := svc.NewPost(context.Background(), &dto.PostInput{
		TitleEn:   title,
		Content:   "<p>some content</p>",
		Published: published,
	})
	require.NoError(t, err)
	return post
}

func TestNewPostSlugUniqueness(t *testing.T) {
	svc, _ := newTestService(t, nil)

	first := seedPost(t, svc, "Welcome to Chand-e-Mahtab", true)
	require.Equal(t, "welcome-to-chand-e-mahtab", first.Slug)

	second := seedPost(t, svc, "Welcome to Chand-e-Mahtab", true)
	require.Equal(t, "welcome-to-chand-e-mahtab-1", second.Slug)

	third := seedPost(t, svc, "Welcome to Chand-e-Mahtab", false)
	require.Equal(t, "welcome-to-chand-e-mahtab-2", third.Slug)
}

func TestNewPostSlugCollisionCap(t *testing.T) {
	svc, db := newTestService(t, nil)

	// occupy the base slug and every counter suffix the loop may try
	posts := make([]*model.Post, 0, maxSlugAttempts)
	posts = append(posts, &model.Post{Slug: "crowded", TitleEn: "crowded", Content: "x"})
	for i := 1; i < maxSlugAttempts; i++ {
		posts = append(posts, &model.Post{
			Slug:    fmt.Sprintf("crowded-%d", i),
			TitleEn: "crowded",
			Content: "x",
		})
	}
	require.NoError(t, db.CreateInBatches(posts, 200).Error)

	_, err := svc.NewPost(context.Background(), &dto.PostInput{
		TitleEn: "Crowded",
		Content: "<p>some content</p>",
	})
	require.ErrorContains(t, err, "no unique slug found")
}

func TestNewPostRequiresTitleAndContent(t *testing.T) {
	svc, _ := newTestService(t, nil)

	var ve *model.ValidationError
	_, err := svc.NewPost(context.Background(), &dto.PostInput{TitleEn: "only title"})
	require.Error(t, err)
	require.ErrorAs(t, err, &ve)

	_, err = svc.NewPost(context.Background(), &dto.PostInput{Content: "only content"})
	require.Error(t, err)
	require.ErrorAs(t, err, &ve)
}

func TestPublishTimestampSetOnce(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	post := seedPost(t, svc, "Draft First", false)
	require.Nil(t, post.PublishedAt)

	input := &dto.PostInput{TitleEn: "Draft First", Content: post.Content, Published: true}
	updated, err := svc.UpdatePost(ctx, post.ID, input)
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	firstPublish := *updated.PublishedAt

	// unpublishing keeps the timestamp
	input.Published = false
	updated, err = svc.UpdatePost(ctx, post.ID, input)
	require.NoError(t, err)
	require.False(t, updated.Published)
	require.NotNil(t, updated.PublishedAt)
	require.Equal(t, firstPublish, *updated.PublishedAt)

	// republishing does not overwrite it
	input.Published = true
	updated, err = svc.UpdatePost(ctx, post.ID, input)
	require.NoError(t, err)
	require.Equal(t, firstPublish, *updated.PublishedAt)
}

func TestUpdatePostSlugExcludesSelf(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	post := seedPost(t, svc, "Moonlight Wisdom", true)

	// retitling and titling back must not suffix against the post itself
	_, err := svc.UpdatePost(ctx, post.ID, &dto.PostInput{
		TitleEn: "Moonlight Wisdom Revisited", Content: post.Content, Published: true})
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, post.ID, &dto.PostInput{
		TitleEn: "Moonlight Wisdom", Content: post.Content, Published: true})
	require.NoError(t, err)
	require.Equal(t, "moonlight-wisdom", updated.Slug)
}

func TestDeletePostCascadesComments(t *testing.T) {
	svc, db := newTestService(t, nil)
	ctx := context.Background()

	post := seedPost(t, svc, "Soon Gone", true)
	_, err := svc.CreateComment(ctx, &dto.NewComment{
		PostID:  post.ID,
		Name:    "Reader",
		Content: "a perfectly fine comment",
	}, "198.51.100.7")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, post.ID))

	var n int64
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&n).Error)
	require.Zero(t, n)

	require.ErrorIs(t, svc.DeletePost(ctx, post.ID), model.ErrNotFound)
}

func TestSearchPosts(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	published, err := svc.NewPost(ctx, &dto.PostInput{
		TitleEn:   "The Moonlight of Knowledge",
		TitleUr:   "چاند مہتاب",
		Content:   "<p>wisdom travels</p>",
		Tags:      "wisdom,culture",
		Published: true,
	})
	require.NoError(t, err)

	_, err = svc.NewPost(ctx, &dto.PostInput{
		TitleEn: "Hidden Draft About Moonlight",
		Content: "<p>unpublished</p>",
	})
	require.NoError(t, err)

	// case-insensitive title match, drafts excluded
	result, err := svc.SearchPosts(ctx, "MOONLIGHT")
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	require.Equal(t, published.ID, result.Results[0].ID)

	// tag match
	result, err = svc.SearchPosts(ctx, "culture")
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	// Urdu field match
	result, err = svc.SearchPosts(ctx, "مہتاب")
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	// empty query rejected
	var ve *model.ValidationError
	_, err = svc.SearchPosts(ctx, "   ")
	require.ErrorAs(t, err, &ve)
}

func TestLoadPublishedPostRendersMarkdown(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	post, err := svc.NewPost(ctx, &dto.PostInput{
		TitleEn:   "Markdown Body",
		Content:   "# Heading\n\nsome paragraph",
		Published: true,
	})
	require.NoError(t, err)

	loaded, err := svc.LoadPublishedPost(ctx, post.Slug)
	require.NoError(t, err)
	require.Contains(t, loaded.Content, "<h1")
	require.Contains(t, loaded.Content, "<p>some paragraph</p>")

	_, err = svc.LoadPublishedPost(ctx, "no-such-slug")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestSiteMetaUpsert(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	// empty record before any save
	meta, err := svc.LoadSiteMeta(ctx)
	require.NoError(t, err)
	require.Empty(t, meta.AboutEn)

	_, err = svc.SaveSiteMeta(ctx, &dto.SiteMetaInput{AboutEn: "first", Email: "a@b.io"})
	require.NoError(t, err)

	_, err = svc.SaveSiteMeta(ctx, &dto.SiteMetaInput{AboutEn: "second", AboutUr: "دوسرا"})
	require.NoError(t, err)

	meta, err = svc.LoadSiteMeta(ctx)
	require.NoError(t, err)
	require.Equal(t, model.SiteMetaID, meta.ID)
	require.Equal(t, "second", meta.AboutEn)
	require.Equal(t, "دوسرا", meta.AboutUr)
}
