package handlers

import (
	"net/http"
	"strconv"

	"postlink/internal/middleware"
	"postlink/internal/schemas"
	"postlink/internal/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// List is the only public post endpoint. Search filters by title substring;
// limit and offset page the result.
func (h *PostHandler) List(c *gin.Context) {
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultListLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.posts.List(search, limit, offset)
	if err != nil {
		ServiceError(c, err)
		return
	}

	out := make([]schemas.PostVotesOut, len(posts))
	for i := range posts {
		out[i] = schemas.NewPostVotesOut(&posts[i].Post, posts[i].Votes)
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewPostVotesOut(&post.Post, post.Votes))
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req schemas.PostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := h.posts.Create(req.Title, req.Content, published, user)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.NewPostOut(post))
}

func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := postID(c)
	if !ok {
		return
	}

	var req schemas.PostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := h.posts.Update(id, req.Title, req.Content, published, user)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, schemas.NewPostOut(post))
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(id, user); err != nil {
		ServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// postID parses the :id path parameter, answering 404 for anything that
// cannot name an existing post.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrPostNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}
