// Package service implements the blog business logic: post authoring,
// the comment anti-spam pipeline, search, and site settings.
package service

import (
	"context"
	"time"

	gconfig "github.com/Laisky/go-config/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/redis/go-redis/v9"

	"github.com/chandemahtab/blog-api/internal/web/blog/dao"
	"github.com/chandemahtab/blog-api/library/log"
	"github.com/chandemahtab/blog-api/library/throttle"
)

const (
	// commentRateMax accepted submissions per hashed address per window
	commentRateMax = 3
	// commentRateWindow rolling rate-limit window
	commentRateWindow = time.Hour
)

// defaultBadWords rejects a comment when any appears as a
// case-insensitive substring of the name or body.
var defaultBadWords = []string{
	"spam", "fake", "scam", "viagra", "casino", "porn",
}

// Moderator classifies comment content, normally backed by the AI
// assist service. A nil Moderator disables the check.
type Moderator interface {
	// ModerateComment reports whether the comment should be
	// auto-approved for public display.
	ModerateComment(ctx context.Context, content string) (approve bool, err error)
}

var Instance *Blog

func Initialize(ctx context.Context, moderator Moderator) {
	dao.Initialize(ctx)

	limiter := newLimiter(ctx)

	badWords := gconfig.Shared.GetStringSlice("settings.blog.bad_words")
	if len(badWords) == 0 {
		badWords = defaultBadWords
	}

	Instance = New(log.Logger.Named("blog"), dao.Instance, limiter, moderator, badWords)
}

// newLimiter prefers a shared redis counter when one is configured so
// the rate limit holds across replicas, falling back to process-local
// state otherwise.
func newLimiter(ctx context.Context) throttle.Limiter {
	if addr := gconfig.Shared.GetString("settings.db.redis.addr"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			DB:       gconfig.Shared.GetInt("settings.db.redis.db"),
			Password: gconfig.Shared.GetString("settings.db.redis.pwd"),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Logger.Panic("connect redis", zap.Error(err))
		}

		limiter, err := throttle.NewRedisLimiter(rdb, commentRateMax, commentRateWindow)
		if err != nil {
			log.Logger.Panic("create redis comment limiter", zap.Error(err))
		}

		log.Logger.Info("comment rate limiter backed by redis",
			zap.String("addr", addr))
		return limiter
	}

	limiter, err := throttle.NewMemoryLimiter(commentRateMax, commentRateWindow)
	if err != nil {
		log.Logger.Panic("create comment limiter", zap.Error(err))
	}

	return limiter
}

// Blog service type
type Blog struct {
	logger    glog.Logger
	dao       *dao.Blog
	limiter   throttle.Limiter
	moderator Moderator
	badWords  []string
}

// New create new blog service
func New(logger glog.Logger,
	d *dao.Blog,
	limiter throttle.Limiter,
	moderator Moderator,
	badWords []string,
) *Blog {
	return &Blog{
		logger:    logger,
		dao:       d,
		limiter:   limiter,
		moderator: moderator,
		badWords:  badWords,
	}
}
