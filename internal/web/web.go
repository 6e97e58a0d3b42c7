package web

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"

	assistCtl "github.com/chandemahtab/blog-api/internal/web/assist/controller"
	assistSvc "github.com/chandemahtab/blog-api/internal/web/assist/service"
	blogCtl "github.com/chandemahtab/blog-api/internal/web/blog/controller"
	blogSvc "github.com/chandemahtab/blog-api/internal/web/blog/service"
)

// setupSvcs wires the feature controllers. The assist service doubles
// as the blog's comment moderator.
func setupSvcs(ctx context.Context) {
	assistCtl.Initialize(ctx)
	blogCtl.Initialize(ctx, moderatorFromConfig())
}

func moderatorFromConfig() blogSvc.Moderator {
	if !gconfig.Shared.GetBool("settings.blog.ai_moderation") {
		return nil
	}

	return assistSvc.Instance
}

type Controllor struct {
}

func NewControllor() *Controllor {
	return &Controllor{}
}

func (c *Controllor) Run(ctx context.Context) {
	setupSvcs(ctx)

	RunServer(gconfig.Shared.GetString("listen"))
}
