package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkpost/inkpost/stores"
	"github.com/inkpost/inkpost/utils"
)

// PostController manages CRUD operations for posts. Mutation routes carry no
// authentication and the author stays a free-text label; see DESIGN.md.
type PostController struct {
	posts *stores.PostStore
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{posts: stores.NewPostStore(db)}
}

// List returns every post, category expanded.
func (p *PostController) List(ctx *gin.Context) {
	posts, err := p.posts.List()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// Get returns a single post, category expanded.
func (p *PostController) Get(ctx *gin.Context) {
	post, err := p.posts.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// Create inserts a new post.
func (p *PostController) Create(ctx *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Please add a title and content")
		return
	}

	post, err := p.posts.Create(req.Title, req.Content, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrMissingPostFields):
			utils.Error(ctx, http.StatusBadRequest, "Please add a title and content")
		case errors.Is(err, stores.ErrTitleTaken):
			utils.Error(ctx, http.StatusBadRequest, "Post title already exists")
		default:
			utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		}
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// Update merges the provided fields into an existing post. Absent or empty
// fields keep their stored values.
func (p *PostController) Update(ctx *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	patch := stores.PostPatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}

	post, err := p.posts.Update(ctx.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, "Post not found")
		case errors.Is(err, stores.ErrTitleTaken):
			utils.Error(ctx, http.StatusBadRequest, "Post title already exists")
		default:
			utils.Error(ctx, http.StatusInternalServerError, "failed to update post")
		}
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete removes a post permanently.
func (p *PostController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := p.posts.Delete(id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete post")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id, "message": "Post removed"})
}
