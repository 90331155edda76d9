package chatroom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"go-gather/backend/models"
	"go-gather/backend/store/mocks"
)

type serviceMocks struct {
	rooms *mocks.MockChatRoomStore
	users *mocks.MockUserStore
	posts *mocks.MockPostsStore
	texts *mocks.MockChatTextStore
}

func newRoomService(t *testing.T) (*RoomService, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		rooms: mocks.NewMockChatRoomStore(ctrl),
		users: mocks.NewMockUserStore(ctrl),
		posts: mocks.NewMockPostsStore(ctrl),
		texts: mocks.NewMockChatTextStore(ctrl),
	}
	return NewRoomService(m.rooms, m.users, m.posts, m.texts), m
}

func TestCreateRoom(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	postsID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	roomID := primitive.NewObjectID()

	m.posts.EXPECT().FindByID(ctx, postsID).Return(&models.Posts{ID: postsID}, nil)
	m.users.EXPECT().FindByID(ctx, creatorID).Return(&models.User{ID: creatorID, Username: "alice"}, nil)

	var inserted models.ChatRoom
	m.rooms.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, room models.ChatRoom) (primitive.ObjectID, error) {
			inserted = room
			return roomID, nil
		})

	// 請求招募 2 人，容量應為 2 + 1（建立者）
	room, err := svc.CreateRoom(ctx, "go study", creatorID, 2, postsID)
	require.NoError(t, err)

	assert.Equal(t, roomID, room.ID)
	assert.Equal(t, 3, inserted.MaxUserNumber, "容量應該是招募上限 + 建立者")
	assert.Equal(t, 1, inserted.CurrentUserNumber, "初始人數應該只有建立者一人")
	assert.Equal(t, creatorID, inserted.CreatorID)
	assert.Empty(t, inserted.InvitedUserIDs, "新聊天室不應該有被邀請者")
}

func TestCreateRoomPostsNotFound(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	postsID := primitive.NewObjectID()
	m.posts.EXPECT().FindByID(ctx, postsID).Return(nil, nil)

	_, err := svc.CreateRoom(ctx, "go study", primitive.NewObjectID(), 2, postsID)
	assert.ErrorIs(t, err, ErrPostsNotFound, "貼文不存在應該回報 NotFound")
}

func TestInviteUsersSuccess(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()

	room := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 3, CurrentUserNumber: 1}
	updated := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 3, CurrentUserNumber: 2,
		InvitedUserIDs: []primitive.ObjectID{bobID}}

	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)
	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{bobID}).
		Return([]models.User{{ID: bobID, Username: "bob"}}, nil)
	m.rooms.EXPECT().AddInvitedUser(ctx, roomID, bobID).Return(true, nil)
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(updated, nil)

	got, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{bobID})
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentUserNumber, "邀請成功後人數應該加一")
	assert.Contains(t, got.InvitedUserIDs, bobID)
}

func TestInviteUsersAlreadyMember(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()

	room := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 3, CurrentUserNumber: 2,
		InvitedUserIDs: []primitive.ObjectID{bobID}}

	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)
	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{bobID}).
		Return([]models.User{{ID: bobID, Username: "bob"}}, nil)
	// 條件更新沒有命中，重新讀取發現 bob 已是成員
	m.rooms.EXPECT().AddInvitedUser(ctx, roomID, bobID).Return(false, nil)
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)

	_, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{bobID})
	assert.ErrorIs(t, err, ErrAlreadyMember, "重複邀請應該回報 AlreadyMember")
}

func TestInviteCreatorIsAlreadyMember(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()

	room := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 3, CurrentUserNumber: 1}

	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)
	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{creatorID}).
		Return([]models.User{{ID: creatorID, Username: "alice"}}, nil)
	m.rooms.EXPECT().AddInvitedUser(ctx, roomID, creatorID).Return(false, nil)
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)

	_, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{creatorID})
	assert.ErrorIs(t, err, ErrAlreadyMember, "邀請建立者本人應該回報 AlreadyMember")
}

func TestInviteUsersRoomFull(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()
	daveID := primitive.NewObjectID()

	// 已滿：容量 2，現有建立者 + bob
	full := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 2, CurrentUserNumber: 2,
		InvitedUserIDs: []primitive.ObjectID{bobID}}

	m.rooms.EXPECT().FindByID(ctx, roomID).Return(full, nil)
	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{daveID}).
		Return([]models.User{{ID: daveID, Username: "dave"}}, nil)
	m.rooms.EXPECT().AddInvitedUser(ctx, roomID, daveID).Return(false, nil)
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(full, nil)

	_, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{daveID})
	assert.ErrorIs(t, err, ErrRoomFull, "超出容量的邀請應該回報 RoomFull")
}

// 批次邀請遇到第一個失敗即中止，之前成功的邀請不回滾
func TestInviteUsersPartialApply(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()
	daveID := primitive.NewObjectID()

	room := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 2, CurrentUserNumber: 1}
	afterBob := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 2, CurrentUserNumber: 2,
		InvitedUserIDs: []primitive.ObjectID{bobID}}

	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)
	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{bobID, daveID}).
		Return([]models.User{{ID: bobID, Username: "bob"}, {ID: daveID, Username: "dave"}}, nil)

	// bob 邀請成功、dave 因已滿失敗
	m.rooms.EXPECT().AddInvitedUser(ctx, roomID, bobID).Return(true, nil)
	m.rooms.EXPECT().AddInvitedUser(ctx, roomID, daveID).Return(false, nil)
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(afterBob, nil)
	// 注意：沒有任何 RemoveInvitedUser 期望 —— bob 的邀請不會被回滾

	_, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{bobID, daveID})
	assert.ErrorIs(t, err, ErrRoomFull, "第二位的失敗應該回報 RoomFull")
}

// 條件更新沒命中、但重讀時名額已被並發移除釋出：
// 兩個失敗條件都不成立時應該重試條件更新，而不是誤報 RoomFull
func TestInviteUsersRetriesWhenReloadShowsNeitherCause(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()

	spare := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 3, CurrentUserNumber: 2}
	afterBob := &models.ChatRoom{ID: roomID, CreatorID: creatorID, MaxUserNumber: 3, CurrentUserNumber: 3,
		InvitedUserIDs: []primitive.ObjectID{bobID}}

	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{bobID}).
		Return([]models.User{{ID: bobID, Username: "bob"}}, nil)
	gomock.InOrder(
		m.rooms.EXPECT().FindByID(ctx, roomID).Return(spare, nil),
		m.rooms.EXPECT().AddInvitedUser(ctx, roomID, bobID).Return(false, nil),
		// 重讀：bob 不是成員、也沒滿（名額剛被並發移除釋出）
		m.rooms.EXPECT().FindByID(ctx, roomID).Return(spare, nil),
		m.rooms.EXPECT().AddInvitedUser(ctx, roomID, bobID).Return(true, nil),
		m.rooms.EXPECT().FindByID(ctx, roomID).Return(afterBob, nil),
	)

	got, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{bobID})
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentUserNumber, "重試後的邀請應該成功")
	assert.Contains(t, got.InvitedUserIDs, bobID)
}

func TestInviteUsersUnknownUser(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID()

	m.rooms.EXPECT().FindByID(ctx, roomID).
		Return(&models.ChatRoom{ID: roomID, MaxUserNumber: 3, CurrentUserNumber: 1}, nil)
	// 查無此人：回傳的使用者數量比請求少
	m.users.EXPECT().FindByIDs(ctx, []primitive.ObjectID{ghostID}).Return([]models.User{}, nil)

	_, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{ghostID})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestInviteUsersRoomNotFound(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(nil, nil)

	_, err := svc.InviteUsers(ctx, roomID, []primitive.ObjectID{primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

// 移除成員時同步釋出貼文的招募名額；非成員靜默跳過
func TestRemoveUsers(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	postsID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()
	strangerID := primitive.NewObjectID()

	room := &models.ChatRoom{ID: roomID, PostsID: postsID, MaxUserNumber: 3, CurrentUserNumber: 2,
		InvitedUserIDs: []primitive.ObjectID{bobID}}

	m.rooms.EXPECT().FindByID(ctx, roomID).Return(room, nil)
	m.rooms.EXPECT().RemoveInvitedUser(ctx, roomID, bobID).Return(true, nil)
	m.posts.EXPECT().DecrementRecruited(ctx, postsID).Return(nil)
	// stranger 不在邀請列表：不更新、也不動貼文的招募人數
	m.rooms.EXPECT().RemoveInvitedUser(ctx, roomID, strangerID).Return(false, nil)

	err := svc.RemoveUsers(ctx, roomID, []primitive.ObjectID{bobID, strangerID})
	assert.NoError(t, err, "移除非成員應該靜默跳過而不是報錯")
}

func TestRemoveUsersRoomNotFound(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	roomID := primitive.NewObjectID()
	m.rooms.EXPECT().FindByID(ctx, roomID).Return(nil, nil)

	err := svc.RemoveUsers(ctx, roomID, []primitive.ObjectID{primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

// 刪除貼文會連鎖刪除其聊天室與聊天訊息
func TestDeletePostsCascade(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	postsID := primitive.NewObjectID()
	roomIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	m.posts.EXPECT().FindByID(ctx, postsID).Return(&models.Posts{ID: postsID}, nil)
	m.rooms.EXPECT().DeleteByPostsID(ctx, postsID).Return(roomIDs, nil)
	m.texts.EXPECT().DeleteByRoomIDs(ctx, roomIDs).Return(nil)
	m.posts.EXPECT().Delete(ctx, postsID).Return(nil)

	err := svc.DeletePostsCascade(ctx, postsID)
	assert.NoError(t, err)
}

func TestDeletePostsCascadeNotFound(t *testing.T) {
	svc, m := newRoomService(t)
	ctx := context.Background()

	postsID := primitive.NewObjectID()
	m.posts.EXPECT().FindByID(ctx, postsID).Return(nil, nil)

	err := svc.DeletePostsCascade(ctx, postsID)
	assert.ErrorIs(t, err, ErrPostsNotFound)
}
