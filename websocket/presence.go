package websocket

import (
	"sync"
)

// Registry 即時在線狀態表
//
// 行程內的記憶體狀態，重啟後從零重建，不持久化也不跨行程共享。
// 由 main.go 建立並注入連線處理器與 REST 處理器，生命週期隨伺服器，
// 不是套件全域變數，鎖的範圍在呼叫端一目了然。
//
// 維護兩層對應：
//   - session -> client（含聊天室與使用者名稱）
//   - roomID -> 在線使用者名稱集合
//
// 在線集合以使用者名稱為鍵：同一使用者開多條連線只算一人，
// 斷線時必須從「剩餘的 session」重新確認同名使用者是否還在線，
// 而不是單純的計數器遞減，否則多分頁的使用者會被提早標為離線
type Registry struct {
	mu        sync.RWMutex
	clients   map[string]*Client             // sessionID -> client
	rooms     map[string]map[string]*Client  // roomID -> sessionID -> client
	roomUsers map[string]map[string]struct{} // roomID -> 在線使用者名稱集合
}

// NewRegistry 創建並返回一個新的 Registry 實例
func NewRegistry() *Registry {
	return &Registry{
		clients:   make(map[string]*Client),
		rooms:     make(map[string]map[string]*Client),
		roomUsers: make(map[string]map[string]struct{}),
	}
}

// Register 登記一條已通過授權的連線
func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[c.ID] = c

	if _, ok := r.rooms[c.RoomID]; !ok {
		r.rooms[c.RoomID] = make(map[string]*Client)
	}
	r.rooms[c.RoomID][c.ID] = c

	if _, ok := r.roomUsers[c.RoomID]; !ok {
		r.roomUsers[c.RoomID] = make(map[string]struct{})
	}
	r.roomUsers[c.RoomID][c.Username] = struct{}{}
}

// Unregister 移除一條連線的登記
// 未登記的連線直接 no-op，不視為錯誤。
// 移除 session 後重新檢查同聊天室是否還有同名使用者的其他連線，
// 都沒有了才把使用者自在線集合移除
func (r *Registry) Unregister(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[c.ID]; !ok {
		return
	}
	delete(r.clients, c.ID)

	sessions, ok := r.rooms[c.RoomID]
	if !ok {
		return
	}
	delete(sessions, c.ID)

	// 從剩餘 session 重新確認，而非遞減計數
	stillConnected := false
	for _, other := range sessions {
		if other.Username == c.Username {
			stillConnected = true
			break
		}
	}
	if !stillConnected {
		if users, ok := r.roomUsers[c.RoomID]; ok {
			delete(users, c.Username)
			if len(users) == 0 {
				delete(r.roomUsers, c.RoomID)
			}
		}
	}

	if len(sessions) == 0 {
		delete(r.rooms, c.RoomID) // 聊天室沒有連線了，回收對應表
	}
}

// SessionsInRoom 取聊天室當前所有連線的快照
// 廣播端在快照上走訪，不需要在發送期間持有鎖
func (r *Registry) SessionsInRoom(roomID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := r.rooms[roomID]
	snapshot := make([]*Client, 0, len(sessions))
	for _, c := range sessions {
		snapshot = append(snapshot, c)
	}
	return snapshot
}

// ConnectedCount 聊天室當前在線人數（以使用者計，不是連線數）
func (r *Registry) ConnectedCount(roomID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roomUsers[roomID])
}

// IsConnected 使用者是否有至少一條在線連線
func (r *Registry) IsConnected(roomID, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, ok := r.roomUsers[roomID]
	if !ok {
		return false
	}
	_, connected := users[username]
	return connected
}
