package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ourblog/app/repositories"
	"ourblog/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing the comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("There are no posts with the id of %d.", postID))
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch comments: "+err.Error())
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles adding a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.commentService.CreateComment(req.Author, req.Body, postID)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("There are no posts with the id of %d.", postID))
		return
	}
	if err != nil {
		sendError(w, http.StatusBadRequest, "Failed to create comment: "+err.Error())
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Edit handles replacing the body of a comment
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	err = cc.commentService.UpdateComment(id, req.Body)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, fmt.Sprintf("There is no comment with the id of %d.", id))
	case err != nil:
		sendError(w, http.StatusBadRequest, "Failed to update comment: "+err.Error())
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	err = cc.commentService.DeleteComment(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("There is no comment with the id of %d.", id))
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to delete comment: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
