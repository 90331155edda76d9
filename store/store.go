// Package store 定義持久層介面與其 MongoDB 實作
// 服務層（chatroom、websocket、handlers）只依賴這裡的介面，
// 單元測試使用 store/mocks 中由 mockgen 生成的替身
package store

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-gather/backend/models"
)

// UserStore 使用者查詢與建立
// 查無資料時回傳 (nil, nil)，由呼叫端轉換為 NotFound 類錯誤
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
}

// PostsStore 招募貼文的讀寫
type PostsStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Posts, error)
	Insert(ctx context.Context, posts models.Posts) (primitive.ObjectID, error)
	// DecrementRecruited 將貼文的已招募人數減一（不會低於 0）
	DecrementRecruited(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ChatRoomStore 聊天室文件的讀寫
//
// AddInvitedUser 與 RemoveInvitedUser 必須是對單一聊天室文件的原子操作：
// 容量檢查與人數遞增在同一次條件更新中完成，
// 並發邀請不可能把人數推超過容量
type ChatRoomStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChatRoom, error)
	FindByMember(ctx context.Context, userID primitive.ObjectID) ([]models.ChatRoom, error)
	Insert(ctx context.Context, room models.ChatRoom) (primitive.ObjectID, error)
	// AddInvitedUser 在「userID 不在邀請列表、也不是建立者、且人數未達上限」時
	// 加入邀請列表並將人數加一，回傳是否有實際更新
	AddInvitedUser(ctx context.Context, roomID, userID primitive.ObjectID) (bool, error)
	// RemoveInvitedUser 在 userID 位於邀請列表時將其移除並將人數減一，
	// 回傳是否有實際更新（非成員為 no-op）
	RemoveInvitedUser(ctx context.Context, roomID, userID primitive.ObjectID) (bool, error)
	// DeleteByPostsID 刪除貼文底下的所有聊天室，回傳被刪除的聊天室 ID
	DeleteByPostsID(ctx context.Context, postsID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// ChatTextStore 聊天訊息的附加與查詢
type ChatTextStore interface {
	Insert(ctx context.Context, text models.ChatText) (primitive.ObjectID, error)
	// RecentByRoom 回傳最新的 limit 筆訊息，以時間由舊到新排序
	RecentByRoom(ctx context.Context, roomID primitive.ObjectID, limit int) ([]models.ChatText, error)
	DeleteByRoomIDs(ctx context.Context, roomIDs []primitive.ObjectID) error
}
