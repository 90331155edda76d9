package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"go-gather/backend/models"
	"go-gather/backend/store/mocks"
)

// appendCall 記錄一次訊息持久化呼叫
type appendCall struct {
	RoomID   primitive.ObjectID
	Username string
	Text     string
}

// fakeTextAppender TextAppender 的測試替身，記錄所有持久化呼叫
type fakeTextAppender struct {
	mu    sync.Mutex
	calls []appendCall
}

func (f *fakeTextAppender) CreateMessage(ctx context.Context, roomID primitive.ObjectID, username, text string) (*models.ChatText, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, appendCall{RoomID: roomID, Username: username, Text: text})
	return &models.ChatText{
		ID:             primitive.NewObjectID(),
		RoomID:         roomID,
		WriterUsername: username,
		Text:           text,
		Timestamp:      time.Now(),
	}, nil
}

func (f *fakeTextAppender) Calls() []appendCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]appendCall{}, f.calls...)
}

// chatFixture 測試場景：roomA 由 alice 建立、bob 受邀；roomB 由 carol 建立
type chatFixture struct {
	server   *httptest.Server
	registry *Registry
	appender *fakeTextAppender
	roomA    *models.ChatRoom
	roomB    *models.ChatRoom
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()

	aliceID := primitive.NewObjectID()
	bobID := primitive.NewObjectID()
	carolID := primitive.NewObjectID()

	usersByName := map[string]*models.User{
		"alice": {ID: aliceID, Username: "alice"},
		"bob":   {ID: bobID, Username: "bob"},
		"carol": {ID: carolID, Username: "carol"},
	}

	roomA := &models.ChatRoom{
		ID:                primitive.NewObjectID(),
		RoomName:          "go study",
		CreatorID:         aliceID,
		InvitedUserIDs:    []primitive.ObjectID{bobID},
		MaxUserNumber:     3,
		CurrentUserNumber: 2,
	}
	roomB := &models.ChatRoom{
		ID:                primitive.NewObjectID(),
		RoomName:          "side project",
		CreatorID:         carolID,
		InvitedUserIDs:    []primitive.ObjectID{},
		MaxUserNumber:     2,
		CurrentUserNumber: 1,
	}
	roomsByID := map[primitive.ObjectID]*models.ChatRoom{
		roomA.ID: roomA,
		roomB.ID: roomB,
	}

	ctrl := gomock.NewController(t)
	roomStore := mocks.NewMockChatRoomStore(ctrl)
	userStore := mocks.NewMockUserStore(ctrl)

	roomStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id primitive.ObjectID) (*models.ChatRoom, error) {
			return roomsByID[id], nil
		}).AnyTimes()
	userStore.EXPECT().FindByUsername(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, username string) (*models.User, error) {
			return usersByName[username], nil
		}).AnyTimes()

	registry := NewRegistry()
	appender := &fakeTextAppender{}
	handler := NewRoomChatHandler(registry, roomStore, userStore, appender)

	server := httptest.NewServer(http.HandlerFunc(handler.HandleRoomChat))
	t.Cleanup(server.Close)

	return &chatFixture{
		server:   server,
		registry: registry,
		appender: appender,
		roomA:    roomA,
		roomB:    roomB,
	}
}

// dial 以指定參數建立 WebSocket 連線
func (f *chatFixture) dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/chat?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "WebSocket 交握不應該失敗")
	t.Cleanup(func() { conn.Close() })
	return conn
}

// expectPolicyClose 讀取連線並斷言收到 1008 關閉碼
func expectPolicyClose(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(t, err, "被拒絕的連線應該被關閉")
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation),
		"應該收到 policy violation (1008) 關閉碼，實際: %v", err)
}

// waitConnected 等待在線狀態收斂
func (f *chatFixture) waitConnected(t *testing.T, roomID, username string, want bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.registry.IsConnected(roomID, username) == want
	}, 2*time.Second, 10*time.Millisecond,
		"IsConnected(%s, %s) 應該收斂為 %v", roomID, username, want)
}

func TestAdmissionMissingParams(t *testing.T) {
	f := newChatFixture(t)

	// 缺 username
	conn := f.dial(t, "roomId="+f.roomA.ID.Hex())
	expectPolicyClose(t, conn)

	// 缺 roomId
	conn = f.dial(t, "username=alice")
	expectPolicyClose(t, conn)

	assert.Equal(t, 0, f.registry.ConnectedCount(f.roomA.ID.Hex()),
		"被拒絕的連線不應該留下任何在線狀態")
}

func TestAdmissionRejectsNonMember(t *testing.T) {
	f := newChatFixture(t)

	// mallory 不存在
	conn := f.dial(t, "roomId="+f.roomA.ID.Hex()+"&username=mallory")
	expectPolicyClose(t, conn)

	// carol 是真實使用者，但不是 roomA 的成員
	conn = f.dial(t, "roomId="+f.roomA.ID.Hex()+"&username=carol")
	expectPolicyClose(t, conn)

	// 不存在的聊天室
	conn = f.dial(t, "roomId="+primitive.NewObjectID().Hex()+"&username=alice")
	expectPolicyClose(t, conn)

	assert.Equal(t, 0, f.registry.ConnectedCount(f.roomA.ID.Hex()))
	assert.False(t, f.registry.IsConnected(f.roomA.ID.Hex(), "carol"))
}

// bob 發送 "hi"：roomA 的 alice 與 bob 本人都收到 "bob: hi"，
// roomB 的 carol 什麼都收不到，且訊息已持久化
func TestFanOutWithinRoom(t *testing.T) {
	f := newChatFixture(t)
	roomAID := f.roomA.ID.Hex()

	alice := f.dial(t, "roomId="+roomAID+"&username=alice")
	bob := f.dial(t, "roomId="+roomAID+"&username=bob")
	carol := f.dial(t, "roomId="+f.roomB.ID.Hex()+"&username=carol")

	f.waitConnected(t, roomAID, "alice", true)
	f.waitConnected(t, roomAID, "bob", true)
	f.waitConnected(t, f.roomB.ID.Hex(), "carol", true)

	require.NoError(t, bob.WriteMessage(websocket.TextMessage, []byte("hi")))

	for name, conn := range map[string]*websocket.Conn{"alice": alice, "bob": bob} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err, "%s 應該收到廣播", name)
		assert.Equal(t, "bob: hi", string(payload), "%s 收到的訊息幀格式應該是 \"<username>: <text>\"", name)
	}

	// carol 在另一個聊天室，不應收到任何訊息
	carol.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err := carol.ReadMessage()
	assert.Error(t, err, "carol 不應該收到 roomA 的廣播")

	// 廣播前必定已持久化
	calls := f.appender.Calls()
	require.Len(t, calls, 1, "應該恰好持久化一筆訊息")
	assert.Equal(t, f.roomA.ID, calls[0].RoomID)
	assert.Equal(t, "bob", calls[0].Username)
	assert.Equal(t, "hi", calls[0].Text)
}

// bob 開兩個分頁，關掉一個仍在線，兩個都關才離線
func TestPresenceSurvivesMultiTab(t *testing.T) {
	f := newChatFixture(t)
	roomAID := f.roomA.ID.Hex()

	tab1 := f.dial(t, "roomId="+roomAID+"&username=bob")
	tab2 := f.dial(t, "roomId="+roomAID+"&username=bob")

	f.waitConnected(t, roomAID, "bob", true)
	require.Eventually(t, func() bool {
		return len(f.registry.SessionsInRoom(roomAID)) == 2
	}, 2*time.Second, 10*time.Millisecond, "兩條連線都應該完成登記")

	assert.Equal(t, 1, f.registry.ConnectedCount(roomAID), "同一使用者的兩條連線只算一人在線")

	tab1.Close()
	require.Eventually(t, func() bool {
		return len(f.registry.SessionsInRoom(roomAID)) == 1
	}, 2*time.Second, 10*time.Millisecond, "第一條連線應該被移除")
	assert.True(t, f.registry.IsConnected(roomAID, "bob"), "還剩一個分頁時 bob 仍應在線")

	tab2.Close()
	f.waitConnected(t, roomAID, "bob", false)
	assert.Equal(t, 0, f.registry.ConnectedCount(roomAID))
}

// 斷線重連：舊連線關閉後重新連上，在線狀態恢復
func TestReconnectAfterDisconnect(t *testing.T) {
	f := newChatFixture(t)
	roomAID := f.roomA.ID.Hex()

	conn := f.dial(t, "roomId="+roomAID+"&username=alice")
	f.waitConnected(t, roomAID, "alice", true)

	conn.Close()
	f.waitConnected(t, roomAID, "alice", false)

	again := f.dial(t, "roomId="+roomAID+"&username=alice")
	f.waitConnected(t, roomAID, "alice", true)

	require.NoError(t, again.WriteMessage(websocket.TextMessage, []byte("back")))
	again.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := again.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "alice: back", string(payload), "重連後的連線應該照常收到自己的廣播")
}
