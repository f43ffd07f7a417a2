package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ourblog/app/repositories"
	"ourblog/app/services"
	"ourblog/app/validation"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// postPayload is the request body for creating and updating posts.
type postPayload struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
}

// Index handles listing posts with pagination and optional comments
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	limit, page, ok := pc.parseWindow(w, r)
	if !ok {
		return
	}

	includeComments := false
	if v := r.URL.Query().Get("comments"); v != "" {
		b, err := validation.Boolean(v)
		if err != nil {
			sendError(w, http.StatusBadRequest, "'comments' must be boolean.")
			return
		}
		includeComments = b
	}

	posts, err := pc.postService.ListPosts(limit, page, includeComments)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts: "+err.Error())
		return
	}
	if posts == nil {
		sendError(w, http.StatusNotFound, "There are no posts.")
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("There are no posts with the id of %d.", id))
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch post: "+err.Error())
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// ByAuthor handles listing the posts of a single author
func (pc *PostController) ByAuthor(w http.ResponseWriter, r *http.Request) {
	author := mux.Vars(r)["author"]

	limit, page, ok := pc.parseWindow(w, r)
	if !ok {
		return
	}

	posts, err := pc.postService.ListPostsByAuthor(author, limit, page)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts: "+err.Error())
		return
	}
	if posts == nil {
		sendError(w, http.StatusNotFound, fmt.Sprintf("There is no post made by %s.", author))
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req postPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if !pc.checkImageURL(w, r, req.ImgURL) {
		return
	}

	post, err := pc.postService.CreatePost(req.Author, req.Title, req.Subtitle, req.Body, req.ImgURL)
	if errors.Is(err, repositories.ErrDuplicateTitle) {
		sendError(w, http.StatusConflict, "A post with this title already exists.")
		return
	}
	if err != nil {
		sendError(w, http.StatusBadRequest, "Failed to create post: "+err.Error())
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles replacing an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req postPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if !pc.checkImageURL(w, r, req.ImgURL) {
		return
	}

	err = pc.postService.UpdatePost(id, req.Title, req.Subtitle, req.Body, req.ImgURL)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, fmt.Sprintf("There are no posts with the id of %d.", id))
	case errors.Is(err, repositories.ErrDuplicateTitle):
		sendError(w, http.StatusConflict, "A post with this title already exists.")
	case err != nil:
		sendError(w, http.StatusBadRequest, "Failed to update post: "+err.Error())
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Delete handles deleting a post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	err = pc.postService.DeletePost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("There is no post with the id of %d.", id))
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to delete post: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseWindow reads the limit and page query parameters. The boundary is
// stricter than the service: non-numeric or out-of-range values are
// rejected here, while the service merely clamps.
func (pc *PostController) parseWindow(w http.ResponseWriter, r *http.Request) (limit, page int, ok bool) {
	limit, page = 0, 1

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			sendError(w, http.StatusBadRequest, "'limit' must be >= 0")
			return 0, 0, false
		}
		limit = n
	}
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			sendError(w, http.StatusBadRequest, "'page' must be >= 1")
			return 0, 0, false
		}
		page = n
	}
	return limit, page, true
}

// checkImageURL verifies that a supplied image URL points at an actual
// image before anything is written. It reports whether the request may
// proceed; on failure the response has already been sent.
func (pc *PostController) checkImageURL(w http.ResponseWriter, r *http.Request, imgURL string) bool {
	imgURL = strings.TrimSpace(imgURL)
	if imgURL == "" {
		return true
	}

	imgType, err := validation.ImageURL(r.Context(), imgURL)
	if errors.Is(err, validation.ErrMalformedURL) {
		sendError(w, http.StatusBadRequest, "'img_url' is not a valid url.")
		return false
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to verify 'img_url': "+err.Error())
		return false
	}
	if imgType == "" {
		sendError(w, http.StatusBadRequest, "'img_url' is not a valid url for an image.")
		return false
	}
	return true
}
