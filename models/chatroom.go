package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatRoom 代表一個綁定招募貼文的群組聊天室
//
// 人數不變量：CurrentUserNumber == 1 + len(InvitedUserIDs)
// （"+1" 是建立者本人，建立者不在 InvitedUserIDs 中）
type ChatRoom struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	RoomName          string               `bson:"roomName" json:"roomName"`
	CreatorID         primitive.ObjectID   `bson:"creatorId" json:"creatorId"`
	InvitedUserIDs    []primitive.ObjectID `bson:"invitedUserIds" json:"invitedUserIds"` // 被邀請的使用者 ID 列表（不含建立者）
	PostsID           primitive.ObjectID   `bson:"postsId" json:"postsId"`               // 來源招募貼文
	MaxUserNumber     int                  `bson:"maxUserNumber" json:"maxUserNumber"`   // 容量 = 貼文招募上限 + 建立者
	CurrentUserNumber int                  `bson:"currentUserNumber" json:"currentUserNumber"`
	CreatedAt         time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsMember 判斷 userID 是否為聊天室成員（建立者或被邀請者）
func (r *ChatRoom) IsMember(userID primitive.ObjectID) bool {
	if r.CreatorID == userID {
		return true
	}
	for _, id := range r.InvitedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
