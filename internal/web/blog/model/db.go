package model

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"gorm.io/gorm"

	"github.com/chandemahtab/blog-api/library/db/postgres"
	"github.com/chandemahtab/blog-api/library/log"
)

var (
	BlogDB *gorm.DB
)

func Initialize(ctx context.Context) {
	var err error
	if BlogDB, err = postgres.NewDB(ctx,
		postgres.DialInfo{
			Addr:   gconfig.Shared.GetString("settings.db.blog.addr"),
			DBName: gconfig.Shared.GetString("settings.db.blog.db"),
			User:   gconfig.Shared.GetString("settings.db.blog.user"),
			Pwd:    gconfig.Shared.GetString("settings.db.blog.pwd"),
		},
	); err != nil {
		log.Logger.Panic("connect to blog db", zap.Error(err))
	}

	if err = Migrate(BlogDB); err != nil {
		log.Logger.Panic("migrate blog db", zap.Error(err))
	}
}

// Migrate creates or updates the blog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Post{}, &Comment{}, &SiteMeta{})
}
