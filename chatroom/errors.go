package chatroom

import "errors"

// 聊天室領域的錯誤分類
// NotFound 類對應 REST 層的 404，驗證類（AlreadyMember / RoomFull）對應 422
// 所有錯誤皆為同步單次回報，不做自動重試
var (
	ErrRoomNotFound  = errors.New("chatroom: room not found")
	ErrPostsNotFound = errors.New("chatroom: posts not found")
	ErrUserNotFound  = errors.New("chatroom: user not found")
	ErrAlreadyMember = errors.New("chatroom: user is already a member")
	ErrRoomFull      = errors.New("chatroom: room has reached max user number")
	ErrNotInvited    = errors.New("chatroom: user is not a member of this room")
)
