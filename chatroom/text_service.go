package chatroom

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-gather/backend/models"
	"go-gather/backend/store"
)

// RecentTextLimit 「最近訊息」視窗大小，讀取介面固定取最新 25 筆
const RecentTextLimit = 25

const (
	recentCacheKeyFmt = "chat:recent:%s"
	recentCacheTTL    = 60 * time.Second
)

// TextService 聊天訊息的附加與最近訊息查詢
// rdb 為 nil 時停用快取，一律直接讀資料庫
type TextService struct {
	texts store.ChatTextStore
	rooms store.ChatRoomStore
	users store.UserStore
	rdb   *redis.Client
}

func NewTextService(texts store.ChatTextStore, rooms store.ChatRoomStore, users store.UserStore, rdb *redis.Client) *TextService {
	return &TextService{texts: texts, rooms: rooms, users: users, rdb: rdb}
}

// CreateMessage 將訊息寫入資料庫並回傳含伺服器時間戳的完整訊息
// 聊天室或使用者不存在時回傳 NotFound 類錯誤
func (s *TextService) CreateMessage(ctx context.Context, roomID primitive.ObjectID, username, text string) (*models.ChatText, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	writer, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find writer: %w", err)
	}
	if writer == nil {
		return nil, ErrUserNotFound
	}

	msg := models.ChatText{
		RoomID:         roomID,
		WriterID:       writer.ID,
		WriterUsername: writer.Username,
		Text:           text,
		Timestamp:      time.Now(),
	}

	id, err := s.texts.Insert(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("insert text: %w", err)
	}
	msg.ID = id

	s.invalidateRecent(ctx, roomID)
	return &msg, nil
}

// RecentMessages 取聊天室最新 25 筆訊息，以時間由舊到新排序
// 每次回傳全新的切片，沒有游標或分頁狀態
func (s *TextService) RecentMessages(ctx context.Context, roomID primitive.ObjectID) ([]models.ChatText, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if cached, ok := s.readRecentCache(ctx, roomID); ok {
		return cached, nil
	}

	texts, err := s.texts.RecentByRoom(ctx, roomID, RecentTextLimit)
	if err != nil {
		return nil, fmt.Errorf("recent texts: %w", err)
	}

	s.writeRecentCache(ctx, roomID, texts)
	return texts, nil
}

// readRecentCache 讀取快取，任何快取錯誤都降級為資料庫讀取
func (s *TextService) readRecentCache(ctx context.Context, roomID primitive.ObjectID) ([]models.ChatText, bool) {
	if s.rdb == nil {
		return nil, false
	}

	key := fmt.Sprintf(recentCacheKeyFmt, roomID.Hex())
	payload, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Error reading recent cache for room %s: %v", roomID.Hex(), err)
		return nil, false
	}

	var texts []models.ChatText
	if err := json.Unmarshal(payload, &texts); err != nil {
		log.Printf("Error decoding recent cache for room %s: %v", roomID.Hex(), err)
		return nil, false
	}
	return texts, true
}

func (s *TextService) writeRecentCache(ctx context.Context, roomID primitive.ObjectID, texts []models.ChatText) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(texts)
	if err != nil {
		return
	}

	key := fmt.Sprintf(recentCacheKeyFmt, roomID.Hex())
	if err := s.rdb.Set(ctx, key, payload, recentCacheTTL).Err(); err != nil {
		log.Printf("Error writing recent cache for room %s: %v", roomID.Hex(), err)
	}
}

// invalidateRecent 訊息附加後讓快取失效，下一次查詢回源重建
func (s *TextService) invalidateRecent(ctx context.Context, roomID primitive.ObjectID) {
	if s.rdb == nil {
		return
	}

	key := fmt.Sprintf(recentCacheKeyFmt, roomID.Hex())
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("Error invalidating recent cache for room %s: %v", roomID.Hex(), err)
	}
}
