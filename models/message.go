package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatText 代表聊天室內的一則訊息
// 訊息建立後不可變更，只會隨聊天室刪除被連鎖刪除
type ChatText struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RoomID         primitive.ObjectID `bson:"roomId" json:"roomId"`
	WriterID       primitive.ObjectID `bson:"writerId" json:"writerId"`
	WriterUsername string             `bson:"writerUsername" json:"writerUsername"`
	Text           string             `bson:"text" json:"text"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"` // 伺服器端時間，排序依據
}
