package chatroom

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-gather/backend/models"
	"go-gather/backend/store"
)

// RoomService 聊天室生命週期管理
// 負責建立聊天室與在容量規則下管理成員
type RoomService struct {
	rooms store.ChatRoomStore
	users store.UserStore
	posts store.PostsStore
	texts store.ChatTextStore
}

func NewRoomService(rooms store.ChatRoomStore, users store.UserStore, posts store.PostsStore, texts store.ChatTextStore) *RoomService {
	return &RoomService{rooms: rooms, users: users, posts: posts, texts: texts}
}

// CreateRoom 為招募貼文建立聊天室
// 容量 = requestedMax + 1（+1 是建立者本人），初始人數為 1
func (s *RoomService) CreateRoom(ctx context.Context, roomName string, creatorID primitive.ObjectID, requestedMax int, postsID primitive.ObjectID) (*models.ChatRoom, error) {
	posts, err := s.posts.FindByID(ctx, postsID)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	if posts == nil {
		return nil, ErrPostsNotFound
	}

	creator, err := s.users.FindByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("find creator: %w", err)
	}
	if creator == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	room := models.ChatRoom{
		RoomName:          roomName,
		CreatorID:         creatorID,
		InvitedUserIDs:    []primitive.ObjectID{},
		PostsID:           postsID,
		MaxUserNumber:     requestedMax + 1, // 招募上限 + 建立者
		CurrentUserNumber: 1,                // 建立者 -> 1
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := s.rooms.Insert(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}
	room.ID = id

	log.Printf("Chat room %s created for posts %s (capacity %d)", id.Hex(), postsID.Hex(), room.MaxUserNumber)
	return &room, nil
}

// InviteUsers 依序邀請多位使用者加入聊天室
//
// 逐一套用，遇到第一個失敗（ErrAlreadyMember / ErrRoomFull）即中止，
// 之前成功的邀請「不會」回滾。這是沿用既有產品行為的 best-effort 語義，
// 呼叫端看到錯誤時，批次中較早的成員可能已經加入
func (s *RoomService) InviteUsers(ctx context.Context, roomID primitive.ObjectID, userIDs []primitive.ObjectID) (*models.ChatRoom, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	if len(users) != len(userIDs) {
		return nil, ErrUserNotFound
	}

	// 保持呼叫端給定的順序逐一套用
	// FindByIDs 不保證順序，先建索引再按原順序走訪
	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, userID := range userIDs {
		user, ok := byID[userID]
		if !ok {
			return nil, ErrUserNotFound
		}
		if err := s.inviteOne(ctx, roomID, user); err != nil {
			return nil, err
		}
	}

	updated, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("reload room: %w", err)
	}
	if updated == nil {
		return nil, ErrRoomNotFound
	}
	return updated, nil
}

// inviteOne 邀請單一使用者，直到條件更新命中或確認失敗原因為止
//
// 條件更新沒有命中時重新讀取聊天室分類原因，重複成員的判斷優先於容量。
// 重讀結果可能與並發的移除交錯，兩個失敗條件都不成立時不能武斷回報，
// 而是重試條件更新，讓下一輪給出命中或可分類的結果
func (s *RoomService) inviteOne(ctx context.Context, roomID primitive.ObjectID, user models.User) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		modified, err := s.rooms.AddInvitedUser(ctx, roomID, user.ID)
		if err != nil {
			return fmt.Errorf("add invited user: %w", err)
		}
		if modified {
			return nil
		}

		current, err := s.rooms.FindByID(ctx, roomID)
		if err != nil {
			return fmt.Errorf("reload room: %w", err)
		}
		if current == nil {
			return ErrRoomNotFound
		}
		if current.IsMember(user.ID) {
			return fmt.Errorf("%w: %s", ErrAlreadyMember, user.Username)
		}
		if current.CurrentUserNumber >= current.MaxUserNumber {
			return fmt.Errorf("%w: inviting %s", ErrRoomFull, user.Username)
		}
	}
}

// RemoveUsers 將多位使用者移出聊天室
// 不在邀請列表中的使用者（含建立者）靜默跳過；
// 每成功移除一人，同步將貼文的已招募人數減一（退出即釋出一個招募名額）
func (s *RoomService) RemoveUsers(ctx context.Context, roomID primitive.ObjectID, userIDs []primitive.ObjectID) error {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return ErrRoomNotFound
	}

	for _, userID := range userIDs {
		modified, err := s.rooms.RemoveInvitedUser(ctx, roomID, userID)
		if err != nil {
			return fmt.Errorf("remove invited user: %w", err)
		}
		if !modified {
			continue
		}

		if err := s.posts.DecrementRecruited(ctx, room.PostsID); err != nil {
			return fmt.Errorf("decrement recruited count: %w", err)
		}
		log.Printf("User %s removed from room %s", userID.Hex(), roomID.Hex())
	}
	return nil
}

// GetRoom 讀取單一聊天室，查無資料回傳 ErrRoomNotFound
func (s *RoomService) GetRoom(ctx context.Context, roomID primitive.ObjectID) (*models.ChatRoom, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// RoomsOf 查詢使用者參與的所有聊天室
func (s *RoomService) RoomsOf(ctx context.Context, userID primitive.ObjectID) ([]models.ChatRoom, error) {
	return s.rooms.FindByMember(ctx, userID)
}

// MemberUsernames 回傳聊天室全部成員的使用者名稱，建立者在最前
// 供 REST 層組出「成員 + 是否在線」的回應
func (s *RoomService) MemberUsernames(ctx context.Context, room *models.ChatRoom) ([]string, error) {
	ids := append([]primitive.ObjectID{room.CreatorID}, room.InvitedUserIDs...)
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}

	byID := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}

	usernames := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			usernames = append(usernames, name)
		}
	}
	return usernames, nil
}

// DeletePostsCascade 刪除招募貼文並連鎖刪除其聊天室與聊天訊息
// 所有權方向單一：貼文擁有聊天室，聊天室擁有訊息
func (s *RoomService) DeletePostsCascade(ctx context.Context, postsID primitive.ObjectID) error {
	posts, err := s.posts.FindByID(ctx, postsID)
	if err != nil {
		return fmt.Errorf("find posts: %w", err)
	}
	if posts == nil {
		return ErrPostsNotFound
	}

	roomIDs, err := s.rooms.DeleteByPostsID(ctx, postsID)
	if err != nil {
		return fmt.Errorf("delete rooms of posts: %w", err)
	}
	if err := s.texts.DeleteByRoomIDs(ctx, roomIDs); err != nil {
		return fmt.Errorf("delete texts of rooms: %w", err)
	}
	if err := s.posts.Delete(ctx, postsID); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}

	log.Printf("Posts %s deleted with %d chat room(s) cascaded", postsID.Hex(), len(roomIDs))
	return nil
}
