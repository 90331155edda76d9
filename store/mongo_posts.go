package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-gather/backend/models"
)

// MongoPostsStore PostsStore 的 MongoDB 實作
type MongoPostsStore struct {
	coll *mongo.Collection
}

func NewMongoPostsStore(coll *mongo.Collection) *MongoPostsStore {
	return &MongoPostsStore{coll: coll}
}

func (s *MongoPostsStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Posts, error) {
	var posts models.Posts
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&posts)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

func (s *MongoPostsStore) Insert(ctx context.Context, posts models.Posts) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, posts)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// DecrementRecruited 已招募人數減一
// 條件 currentUserNumber > 0 防止減到負數；已是 0 時靜默跳過
func (s *MongoPostsStore) DecrementRecruited(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "currentUserNumber": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"currentUserNumber": -1}},
	)
	return err
}

func (s *MongoPostsStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
