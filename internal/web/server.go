// Package web gin server
package web

import (
	"net/http"
	"net/url"
	"strings"

	ginMw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	assistCtl "github.com/chandemahtab/blog-api/internal/web/assist/controller"
	blogCtl "github.com/chandemahtab/blog-api/internal/web/blog/controller"
	documentCtl "github.com/chandemahtab/blog-api/internal/web/document/controller"
	"github.com/chandemahtab/blog-api/library/auth"
	"github.com/chandemahtab/blog-api/library/log"
)

var (
	server = gin.New()
)

func RunServer(addr string) {
	server.Use(
		gin.Recovery(),
		ginMw.NewLoggerMiddleware(
			ginMw.WithLoggerMwColored(),
			ginMw.WithLevel(log.Logger.Level().String()),
			ginMw.WithLogger(log.Logger.Named("gin")),
		),
		allowCORS,
	)
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})

	registerRoutes(server)

	log.Logger.Info("listening on http", zap.String("addr", addr))
	log.Logger.Panic("httpServer exit", zap.Error(server.Run(addr)))
}

func registerRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	api.GET("/posts", blogCtl.Instance.ListPosts)
	api.GET("/posts/:slug", blogCtl.Instance.GetPost)
	api.GET("/posts/:slug/comments", blogCtl.Instance.ListComments)
	api.POST("/comments", blogCtl.Instance.CreateComment)
	api.GET("/search", blogCtl.Instance.Search)
	api.GET("/settings", blogCtl.Instance.GetSettings)

	ai := api.Group("/ai")
	ai.POST("/translate", assistCtl.Instance.Translate)
	ai.POST("/generate-tags", assistCtl.Instance.GenerateTags)

	aiAdmin := ai.Group("", auth.AdminRequired())
	aiAdmin.POST("/summarize", assistCtl.Instance.Summarize)
	aiAdmin.POST("/suggestions", assistCtl.Instance.Suggestions)
	aiAdmin.POST("/moderate", assistCtl.Instance.Moderate)

	admin := api.Group("/admin")
	admin.POST("/login", blogCtl.Instance.Login)
	admin.POST("/logout", blogCtl.Instance.Logout)

	guarded := admin.Group("", auth.AdminRequired())
	guarded.GET("/posts", blogCtl.Instance.AdminListPosts)
	guarded.POST("/posts", blogCtl.Instance.AdminCreatePost)
	guarded.GET("/posts/:id", blogCtl.Instance.AdminGetPost)
	guarded.PUT("/posts/:id", blogCtl.Instance.AdminUpdatePost)
	guarded.DELETE("/posts/:id", blogCtl.Instance.AdminDeletePost)
	guarded.GET("/comments", blogCtl.Instance.AdminListComments)
	guarded.PUT("/comments/:id/approve", blogCtl.Instance.AdminApproveComment)
	guarded.DELETE("/comments/:id", blogCtl.Instance.AdminDeleteComment)
	guarded.GET("/settings", blogCtl.Instance.GetSettings)
	guarded.POST("/settings", blogCtl.Instance.UpdateSettings)
	guarded.POST("/upload-document", documentCtl.Upload)
}

func allowCORS(ctx *gin.Context) {
	origin := ctx.Request.Header.Get("Origin")
	allowedOrigin := ""

	if origin != "" {
		parsedOriginURL, err := url.Parse(origin)
		if err == nil {
			host := strings.ToLower(parsedOriginURL.Hostname())
			for _, allowed := range gconfig.Shared.GetStringSlice("settings.allowed_origins") {
				allowed = strings.ToLower(allowed)
				if host == allowed || strings.HasSuffix(host, "."+allowed) {
					allowedOrigin = origin
					break
				}
			}
			if host == "localhost" || host == "127.0.0.1" {
				allowedOrigin = origin
			}
		}
	}

	if allowedOrigin != "" {
		ctx.Header("Access-Control-Allow-Origin", allowedOrigin)
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin, X-Requested-With")
		ctx.Header("Access-Control-Max-Age", "86400")
		ctx.Header("Vary", "Origin")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
	} else if origin != "" && ctx.Request.Method == http.MethodOptions {
		// preflight from a disallowed origin
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	ctx.Next()
}
