package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-gather/backend/chatroom"
	"go-gather/backend/models"
	"go-gather/backend/utils"
)

// Presence 在線狀態的唯讀查詢，由 websocket.Registry 實作
type Presence interface {
	ConnectedCount(roomID string) int
	IsConnected(roomID, username string) bool
}

// ChatRoomHandler 聊天室 REST 介面
type ChatRoomHandler struct {
	rooms    *chatroom.RoomService
	texts    *chatroom.TextService
	presence Presence
}

func NewChatRoomHandler(rooms *chatroom.RoomService, texts *chatroom.TextService, presence Presence) *ChatRoomHandler {
	return &ChatRoomHandler{rooms: rooms, texts: texts, presence: presence}
}

// CreateChatRoomRequest 定義創建聊天室的請求體
type CreateChatRoomRequest struct {
	RoomName      string `json:"roomName"`
	MaxUserNumber int    `json:"maxUserNumber"` // 招募上限，實際容量會 +1 給建立者
	PostsID       string `json:"postsId"`
}

// MemberUsersRequest 邀請/移除成員的請求體
type MemberUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

// ChatRoomIndexResponse 聊天室列表的單筆回應
type ChatRoomIndexResponse struct {
	ID                  string `json:"id"`
	RoomName            string `json:"roomName"`
	CurrentUserNumber   int    `json:"currentUserNumber"`
	MaxUserNumber       int    `json:"maxUserNumber"`
	ConnectedUserNumber int    `json:"connectedUserNumber"` // 即時在線人數
}

// MemberStatus 成員名稱與在線狀態
type MemberStatus struct {
	Username  string `json:"username"`
	Connected bool   `json:"connected"`
}

// ChatRoomShowResponse 聊天室詳情回應
type ChatRoomShowResponse struct {
	RoomName string         `json:"roomName"`
	Members  []MemberStatus `json:"members"`
}

// writeServiceError 把服務層錯誤轉為對應的 HTTP 狀態碼
// NotFound 類 -> 404，驗證類（重複邀請/已滿）-> 422，其餘 -> 500
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatroom.ErrRoomNotFound),
		errors.Is(err, chatroom.ErrPostsNotFound),
		errors.Is(err, chatroom.ErrUserNotFound):
		sendJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, chatroom.ErrAlreadyMember),
		errors.Is(err, chatroom.ErrRoomFull):
		sendJSONError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, chatroom.ErrNotInvited):
		sendJSONError(w, err.Error(), http.StatusForbidden)
	default:
		log.Printf("Chatroom service error: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// parseObjectIDs 把 hex 字串列表轉為 ObjectID 列表
func parseObjectIDs(strs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(strs))
	for _, s := range strs {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// roomIDFromPath 從 URL 路徑取聊天室 ID
func roomIDFromPath(r *http.Request) (primitive.ObjectID, error) {
	vars := mux.Vars(r)
	return primitive.ObjectIDFromHex(vars["id"])
}

// CreateChatRoom 處理創建聊天室的請求，建立者取自 JWT context
func (h *ChatRoomHandler) CreateChatRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.RoomName == "" || req.MaxUserNumber < 1 {
		sendJSONError(w, "roomName and a positive maxUserNumber are required", http.StatusBadRequest)
		return
	}

	creatorID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Unauthorized: Creator ID not found in context", http.StatusUnauthorized)
		return
	}

	postsID, err := primitive.ObjectIDFromHex(req.PostsID)
	if err != nil {
		sendJSONError(w, "Invalid posts ID format", http.StatusBadRequest)
		return
	}

	room, err := h.rooms.CreateRoom(r.Context(), req.RoomName, creatorID, req.MaxUserNumber, postsID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(room)
}

// InviteUsers 處理邀請成員的請求
// 批次逐一套用，遇錯即止且不回滾已成功的邀請，
// 回應 422 時呼叫端應重新查詢聊天室取得實際狀態
func (h *ChatRoomHandler) InviteUsers(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		sendJSONError(w, "Invalid room ID format", http.StatusBadRequest)
		return
	}

	var req MemberUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.UserIDs) == 0 {
		sendJSONError(w, "At least one user ID is required", http.StatusBadRequest)
		return
	}

	userIDs, err := parseObjectIDs(req.UserIDs)
	if err != nil {
		sendJSONError(w, "Invalid user ID format", http.StatusBadRequest)
		return
	}

	room, err := h.rooms.InviteUsers(r.Context(), roomID, userIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(room)
}

// RemoveUsers 處理移除成員的請求，非成員靜默跳過
func (h *ChatRoomHandler) RemoveUsers(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		sendJSONError(w, "Invalid room ID format", http.StatusBadRequest)
		return
	}

	var req MemberUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userIDs, err := parseObjectIDs(req.UserIDs)
	if err != nil {
		sendJSONError(w, "Invalid user ID format", http.StatusBadRequest)
		return
	}

	if err := h.rooms.RemoveUsers(r.Context(), roomID, userIDs); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Index 列出使用者參與的聊天室，附即時在線人數
func (h *ChatRoomHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	rooms, err := h.rooms.RoomsOf(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]ChatRoomIndexResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, ChatRoomIndexResponse{
			ID:                  room.ID.Hex(),
			RoomName:            room.RoomName,
			CurrentUserNumber:   room.CurrentUserNumber,
			MaxUserNumber:       room.MaxUserNumber,
			ConnectedUserNumber: h.presence.ConnectedCount(room.ID.Hex()),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Show 聊天室詳情：成員列表與各自的在線狀態
// 只有成員本人可以查看，非成員回 403
func (h *ChatRoomHandler) Show(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		sendJSONError(w, "Invalid room ID format", http.StatusBadRequest)
		return
	}

	userID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	room, err := h.rooms.GetRoom(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !room.IsMember(userID) {
		writeServiceError(w, chatroom.ErrNotInvited)
		return
	}

	usernames, err := h.rooms.MemberUsernames(r.Context(), room)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	members := make([]MemberStatus, 0, len(usernames))
	for _, name := range usernames {
		members = append(members, MemberStatus{
			Username:  name,
			Connected: h.presence.IsConnected(room.ID.Hex(), name),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatRoomShowResponse{RoomName: room.RoomName, Members: members})
}

// RecentTexts 取聊天室最近 25 筆訊息，由舊到新
func (h *ChatRoomHandler) RecentTexts(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		sendJSONError(w, "Invalid room ID format", http.StatusBadRequest)
		return
	}

	texts, err := h.texts.RecentMessages(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if texts == nil {
		texts = []models.ChatText{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(texts)
}
