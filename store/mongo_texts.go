package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-gather/backend/models"
)

// MongoChatTextStore ChatTextStore 的 MongoDB 實作
type MongoChatTextStore struct {
	coll *mongo.Collection
}

func NewMongoChatTextStore(coll *mongo.Collection) *MongoChatTextStore {
	return &MongoChatTextStore{coll: coll}
}

func (s *MongoChatTextStore) Insert(ctx context.Context, text models.ChatText) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, text)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// RecentByRoom 取最新 limit 筆訊息
// 先以時間降序取出最新的 limit 筆，再反轉為由舊到新，方便前端直接渲染
func (s *MongoChatTextStore) RecentByRoom(ctx context.Context, roomID primitive.ObjectID, limit int) ([]models.ChatText, error) {
	filter := bson.M{"roomId": roomID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var texts []models.ChatText
	if err = cursor.All(ctx, &texts); err != nil {
		return nil, err
	}

	// 反轉為時間由舊到新
	for i, j := 0, len(texts)-1; i < j; i, j = i+1, j-1 {
		texts[i], texts[j] = texts[j], texts[i]
	}
	return texts, nil
}

func (s *MongoChatTextStore) DeleteByRoomIDs(ctx context.Context, roomIDs []primitive.ObjectID) error {
	if len(roomIDs) == 0 {
		return nil
	}
	_, err := s.coll.DeleteMany(ctx, bson.M{"roomId": bson.M{"$in": roomIDs}})
	return err
}
