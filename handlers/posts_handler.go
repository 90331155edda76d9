package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-gather/backend/chatroom"
	"go-gather/backend/models"
	"go-gather/backend/store"
	"go-gather/backend/utils"
)

// PostsHandler 招募貼文介面
// 只提供聊天室生命週期需要的操作：建立貼文與刪除貼文（連鎖刪除聊天室）
type PostsHandler struct {
	posts store.PostsStore
	rooms *chatroom.RoomService
}

func NewPostsHandler(posts store.PostsStore, rooms *chatroom.RoomService) *PostsHandler {
	return &PostsHandler{posts: posts, rooms: rooms}
}

// CreatePostsRequest 建立招募貼文的請求體
type CreatePostsRequest struct {
	Title         string `json:"title"`
	MaxUserNumber int    `json:"maxUserNumber"` // 招募上限
}

// CreatePosts 建立招募貼文，作者取自 JWT context
func (h *PostsHandler) CreatePosts(w http.ResponseWriter, r *http.Request) {
	var req CreatePostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.MaxUserNumber < 1 {
		sendJSONError(w, "title and a positive maxUserNumber are required", http.StatusBadRequest)
		return
	}

	authorID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Unauthorized: Author ID not found in context", http.StatusUnauthorized)
		return
	}

	posts := models.Posts{
		Title:         req.Title,
		AuthorID:      authorID,
		MaxUserNumber: req.MaxUserNumber,
		CreatedAt:     time.Now(),
	}
	id, err := h.posts.Insert(r.Context(), posts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	posts.ID = id

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(posts)
}

// DeletePosts 刪除招募貼文，連鎖刪除其聊天室與聊天訊息
// 只有作者本人可以刪除
func (h *PostsHandler) DeletePosts(w http.ResponseWriter, r *http.Request) {
	postsID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		sendJSONError(w, "Invalid posts ID format", http.StatusBadRequest)
		return
	}

	userID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	posts, err := h.posts.FindByID(r.Context(), postsID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if posts == nil {
		writeServiceError(w, chatroom.ErrPostsNotFound)
		return
	}
	if posts.AuthorID != userID {
		sendJSONError(w, "Only the author can delete this posts", http.StatusForbidden)
		return
	}

	if err := h.rooms.DeletePostsCascade(r.Context(), postsID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
