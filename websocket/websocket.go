package websocket

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-gather/backend/models"
	"go-gather/backend/store"
)

const (
	// 將訊息寫入到遠端對等點的最長時間
	writeWait = 10 * time.Second

	// 允許從遠端對等點讀取下一個 pong 訊息的最長時間。
	pongWait = 60 * time.Second

	// 發送 ping 訊息給遠端對等點的週期。
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// 連線授權時資料庫查詢的逾時
	lookupTimeout = 5 * time.Second
)

// upgrader 用於將 HTTP 連線升級為 WebSocket 連線
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 設定true:允許所有來源的連線
		return true
	},
}

// TextAppender 訊息持久化的介面，由 chatroom.TextService 實作
type TextAppender interface {
	CreateMessage(ctx context.Context, roomID primitive.ObjectID, username, text string) (*models.ChatText, error)
}

// Client 代表一條已授權的 WebSocket 連線
// 連線授權後建立，連線關閉後丟棄，不會重複使用
type Client struct {
	ID       string // 本行程內的 session 識別碼
	RoomID   string // 綁定的聊天室 ID（hex）
	Username string // 綁定的使用者名稱

	handler *RoomChatHandler
	conn    *websocket.Conn
	send    chan []byte // 對外發送的緩衝通道

	mu     sync.Mutex // 保護 closed 與對 send 的關閉/投遞
	closed bool
}

// closeSend 關閉發送通道，writePump 收到後會送出 CloseMessage
// 廣播端丟棄慢連線與 readPump 正常收尾可能同時呼叫
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// trySend 非阻塞投遞一個訊息幀
// 與 closeSend 持同一把鎖，通道不可能在檢查與投遞之間被關閉；
// 已關閉或緩衝已滿都回報失敗，由呼叫端決定是否丟棄連線
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// 讀取用戶傳來的訊息，交給 handler 持久化並廣播
func (c *Client) readPump() {
	defer func() {
		c.handler.registry.Unregister(c)
		c.closeSend()
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Client %s disconnected gracefully.", c.ID)
			} else {
				log.Printf("Error reading message from client %s: %v", c.ID, err)
			}
			break
		}

		c.handler.handleText(c, string(payload))
	}
}

// 接收廣播來的訊息，寫給前端
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 這個 channel 被關閉了（ok == false），送出 CloseMessage
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Printf("Error writing message to client %s: %v", c.ID, err)
				return
			}

		// 定時器保持連線活躍並檢測客戶端是否仍在線。
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// RoomChatHandler 聊天室連線處理器
// 驗證新連線的成員資格、登記在線狀態、把訊息持久化後廣播給同聊天室的連線
type RoomChatHandler struct {
	registry *Registry
	rooms    store.ChatRoomStore
	users    store.UserStore
	texts    TextAppender
}

func NewRoomChatHandler(registry *Registry, rooms store.ChatRoomStore, users store.UserStore, texts TextAppender) *RoomChatHandler {
	return &RoomChatHandler{
		registry: registry,
		rooms:    rooms,
		users:    users,
		texts:    texts,
	}
}

// HandleRoomChat 處理 WebSocket 連線請求
//
// 成員資格只在連線建立時檢查一次；
// 連線存活期間的邀請/移除不會回頭改變已建立的連線
func (h *RoomChatHandler) HandleRoomChat(w http.ResponseWriter, r *http.Request) {
	roomIDStr := r.URL.Query().Get("roomId")
	username := r.URL.Query().Get("username")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	// 缺少參數：以 policy violation 拒絕，不登記任何狀態
	if roomIDStr == "" || username == "" {
		closeWithPolicyViolation(conn, "roomId and username are required")
		return
	}

	roomID, err := primitive.ObjectIDFromHex(roomIDStr)
	if err != nil {
		closeWithPolicyViolation(conn, "invalid roomId format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
	defer cancel()

	if !h.authorize(ctx, roomID, username) {
		closeWithPolicyViolation(conn, "only invited members may connect")
		return
	}

	client := &Client{
		ID:       uuid.NewString(),
		RoomID:   roomID.Hex(),
		Username: username,
		handler:  h,
		conn:     conn,
		send:     make(chan []byte, 256),
	}
	h.registry.Register(client)
	log.Printf("Client %s (%s) connected to room %s. Online users: %d",
		client.ID, username, client.RoomID, h.registry.ConnectedCount(client.RoomID))

	go client.writePump()
	client.readPump() // readPump 會在連線關閉時自動取消登記
}

// authorize 解析使用者並確認其為聊天室成員（建立者或被邀請者）
func (h *RoomChatHandler) authorize(ctx context.Context, roomID primitive.ObjectID, username string) bool {
	room, err := h.rooms.FindByID(ctx, roomID)
	if err != nil {
		log.Printf("Error finding room %s during admission: %v", roomID.Hex(), err)
		return false
	}
	if room == nil {
		return false
	}

	user, err := h.users.FindByUsername(ctx, username)
	if err != nil {
		log.Printf("Error finding user %s during admission: %v", username, err)
		return false
	}
	if user == nil {
		return false
	}

	return room.IsMember(user.ID)
}

// handleText 處理一則來自 OPEN 連線的文字訊息
// 先持久化再廣播；持久化失敗就不廣播，確保每則送出的訊息都查得到
func (h *RoomChatHandler) handleText(c *Client, text string) {
	// 理論上 OPEN 之後不可能沒有綁定，防禦性的靜默丟棄
	if c.RoomID == "" || c.Username == "" {
		return
	}

	roomID, err := primitive.ObjectIDFromHex(c.RoomID)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if _, err := h.texts.CreateMessage(ctx, roomID, c.Username, text); err != nil {
		log.Printf("Error saving message from %s in room %s: %v", c.Username, c.RoomID, err)
		return
	}

	h.broadcast(c.RoomID, c.Username+": "+text)
}

// broadcast 把一個訊息幀發給聊天室的所有在線連線（含發送者本人）
// 每個收件者各自非阻塞投遞：發送通道滿或已在關閉中的連線直接丟棄，
// 單一遲鈍的收件者不會拖慢或中斷對其他人的投遞
func (h *RoomChatHandler) broadcast(roomID, frame string) {
	payload := []byte(frame)
	for _, peer := range h.registry.SessionsInRoom(roomID) {
		if peer.trySend(payload) {
			continue
		}
		h.registry.Unregister(peer)
		peer.closeSend()
		log.Printf("Client %s unable to receive, dropped from room %s", peer.ID, roomID)
	}
}

// ConnectedCount 聊天室當前在線人數，唯讀查詢
func (h *RoomChatHandler) ConnectedCount(roomID string) int {
	return h.registry.ConnectedCount(roomID)
}

// IsConnected 使用者當前是否在線，唯讀查詢
func (h *RoomChatHandler) IsConnected(roomID, username string) bool {
	return h.registry.IsConnected(roomID, username)
}

// closeWithPolicyViolation 以 1008 關閉碼拒絕連線
func closeWithPolicyViolation(conn *websocket.Conn, reason string) {
	deadline := time.Now().Add(writeWait)
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		log.Printf("Error sending close message: %v", err)
	}
	conn.Close()
}
