package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Posts 代表一篇招募貼文
// 聊天室由貼文衍生，貼文刪除時其聊天室與聊天訊息會被連鎖刪除
type Posts struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title             string             `bson:"title" json:"title"`
	AuthorID          primitive.ObjectID `bson:"authorId" json:"authorId"`
	MaxUserNumber     int                `bson:"maxUserNumber" json:"maxUserNumber"`         // 招募上限
	CurrentUserNumber int                `bson:"currentUserNumber" json:"currentUserNumber"` // 已招募人數，成員退出聊天室時同步遞減
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
