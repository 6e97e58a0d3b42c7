package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
)

// AdminListPosts handles GET /api/admin/posts
func (c *Blog) AdminListPosts(ctx *gin.Context) {
	posts, err := c.svc.AdminListPosts(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

// AdminGetPost handles GET /api/admin/posts/:id
func (c *Blog) AdminGetPost(ctx *gin.Context) {
	post, err := c.svc.LoadPost(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// AdminCreatePost handles POST /api/admin/posts
func (c *Blog) AdminCreatePost(ctx *gin.Context) {
	req := new(dto.PostInput)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	post, err := c.svc.NewPost(ctx.Request.Context(), req)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// AdminUpdatePost handles PUT /api/admin/posts/:id
func (c *Blog) AdminUpdatePost(ctx *gin.Context) {
	req := new(dto.PostInput)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	post, err := c.svc.UpdatePost(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// AdminDeletePost handles DELETE /api/admin/posts/:id
func (c *Blog) AdminDeletePost(ctx *gin.Context) {
	if err := c.svc.DeletePost(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// AdminListComments handles GET /api/admin/comments
func (c *Blog) AdminListComments(ctx *gin.Context) {
	comments, err := c.svc.AdminListComments(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AdminApproveComment handles PUT /api/admin/comments/:id/approve
func (c *Blog) AdminApproveComment(ctx *gin.Context) {
	if err := c.svc.ApproveComment(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment approved"})
}

// AdminDeleteComment handles DELETE /api/admin/comments/:id
func (c *Blog) AdminDeleteComment(ctx *gin.Context) {
	if err := c.svc.DeleteComment(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// UpdateSettings handles POST /api/admin/settings
func (c *Blog) UpdateSettings(ctx *gin.Context) {
	req := new(dto.SiteMetaInput)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	meta, err := c.svc.SaveSiteMeta(ctx.Request.Context(), req)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meta)
}
