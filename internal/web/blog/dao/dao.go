// Package dao contains all the data access objects of the blog feature.
package dao

import (
	"context"

	glog "github.com/Laisky/go-utils/v6/log"
	"gorm.io/gorm"

	"github.com/chandemahtab/blog-api/internal/web/blog/model"
	"github.com/chandemahtab/blog-api/library/log"
)

// Blog dao type
type Blog struct {
	logger glog.Logger
	db     *gorm.DB
}

var Instance *Blog

func Initialize(ctx context.Context) {
	model.Initialize(ctx)
	Instance = New(log.Logger.Named("blog_dao"), model.BlogDB)
}

// New create new dao
func New(logger glog.Logger, db *gorm.DB) *Blog {
	return &Blog{
		logger: logger,
		db:     db,
	}
}
