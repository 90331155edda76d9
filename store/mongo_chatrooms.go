package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-gather/backend/models"
)

// MongoChatRoomStore ChatRoomStore 的 MongoDB 實作
type MongoChatRoomStore struct {
	coll *mongo.Collection
}

func NewMongoChatRoomStore(coll *mongo.Collection) *MongoChatRoomStore {
	return &MongoChatRoomStore{coll: coll}
}

func (s *MongoChatRoomStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByMember 查詢使用者參與的所有聊天室（建立者或被邀請者）
func (s *MongoChatRoomStore) FindByMember(ctx context.Context, userID primitive.ObjectID) ([]models.ChatRoom, error) {
	filter := bson.M{"$or": []bson.M{
		{"creatorId": userID},
		{"invitedUserIds": userID},
	}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.ChatRoom
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *MongoChatRoomStore) Insert(ctx context.Context, room models.ChatRoom) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, room)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// AddInvitedUser 原子性的邀請操作
//
// 過濾條件把「不是建立者」「不在邀請列表」「人數未達上限」
// 與 $addToSet + $inc 放進同一次 UpdateOne，
// 並發邀請競爭同一個名額時 MongoDB 的單文件原子性保證只有一個會成功
// 沒有更新時由呼叫端重新讀取聊天室判斷是 AlreadyMember 還是 RoomFull
func (s *MongoChatRoomStore) AddInvitedUser(ctx context.Context, roomID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":            roomID,
		"creatorId":      bson.M{"$ne": userID},
		"invitedUserIds": bson.M{"$ne": userID},
		"$expr":          bson.M{"$lt": []interface{}{"$currentUserNumber", "$maxUserNumber"}},
	}
	update := bson.M{
		"$addToSet": bson.M{"invitedUserIds": userID},
		"$inc":      bson.M{"currentUserNumber": 1},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// RemoveInvitedUser 原子性的移除操作
// 只在 userID 位於邀請列表時 $pull 並遞減人數，建立者與非成員都不會匹配
func (s *MongoChatRoomStore) RemoveInvitedUser(ctx context.Context, roomID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":            roomID,
		"invitedUserIds": userID,
	}
	update := bson.M{
		"$pull": bson.M{"invitedUserIds": userID},
		"$inc":  bson.M{"currentUserNumber": -1},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// DeleteByPostsID 刪除貼文底下所有聊天室，回傳被刪除的聊天室 ID
// 供呼叫端接著連鎖刪除聊天訊息
func (s *MongoChatRoomStore) DeleteByPostsID(ctx context.Context, postsID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"postsId": postsID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.ChatRoom
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	roomIDs := make([]primitive.ObjectID, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	if len(roomIDs) > 0 {
		if _, err := s.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": roomIDs}}); err != nil {
			return nil, err
		}
	}
	return roomIDs, nil
}
