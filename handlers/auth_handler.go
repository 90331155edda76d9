package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt" // 用於密碼哈希
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"go-gather/backend/models"
	"go-gather/backend/store"
	"go-gather/backend/utils"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// AuthHandler 處理註冊、登入與 Google OAuth 登入
type AuthHandler struct {
	users       store.UserStore
	jwtSecret   string
	oauthConfig *oauth2.Config
}

// NewAuthHandler 創建 AuthHandler
// clientID 留空時 Google 登入路由會回應 503
func NewAuthHandler(users store.UserStore, jwtSecret, clientID, clientSecret, redirectURL string) *AuthHandler {
	var oauthConfig *oauth2.Config
	if clientID != "" {
		oauthConfig = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return &AuthHandler{users: users, jwtSecret: jwtSecret, oauthConfig: oauthConfig}
}

// sendJSONError 統一發送 JSON 格式錯誤響應
func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	var errorResponse models.ErrorResponse
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errorResponse.Message = message
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("Failed to write error response: %v", err)
	}
}

// RegisterUser 處理使用者註冊請求
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var registerReq models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		log.Printf("JSON decode error: %v", err)
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	// 基本的輸入驗證
	if registerReq.Email == "" || registerReq.Username == "" || registerReq.Password == "" {
		sendJSONError(w, "Email, username, and password are required", http.StatusBadRequest)
		return
	}

	// 先檢查 Email，如果存在則直接返回
	existing, err := h.users.FindByEmail(r.Context(), registerReq.Email)
	if err != nil {
		log.Printf("Error checking existing email: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		sendJSONError(w, "Email already registered", http.StatusConflict)
		return
	}

	// 如果 Email 不存在，再檢查 Username
	existing, err = h.users.FindByUsername(r.Context(), registerReq.Username)
	if err != nil {
		log.Printf("Error checking existing username: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		sendJSONError(w, "Username already taken", http.StatusConflict)
		return
	}

	// 哈希密碼
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerReq.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Email:    registerReq.Email,
		Username: registerReq.Username,
		Password: string(hashedPassword),
	}
	id, err := h.users.Insert(r.Context(), user)
	if err != nil {
		log.Printf("Error inserting user: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	user.ID = id

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// LoginRequest 登入請求體
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse 登入成功的回應，帶 JWT
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// LoginUser 處理使用者登入請求
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), loginReq.Email)
	if err != nil {
		log.Printf("Error finding user by email: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		sendJSONError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginReq.Password)); err != nil {
		sendJSONError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, h.jwtSecret)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: token, User: *user})
}

// GoogleLogin 轉導到 Google 授權頁
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		sendJSONError(w, "Google login is not configured", http.StatusServiceUnavailable)
		return
	}

	// state 防 CSRF，前端應於 callback 驗證
	url := h.oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// googleUserInfo Google userinfo API 的回應欄位
type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleCallback 處理 Google 授權回呼：換 token、查使用者資料、
// 第一次登入時建立帳號，最後簽發與本地登入相同的 JWT
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		sendJSONError(w, "Google login is not configured", http.StatusServiceUnavailable)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		sendJSONError(w, "Authorization code is required", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.Printf("Error exchanging OAuth code: %v", err)
		sendJSONError(w, "Failed to exchange authorization code", http.StatusUnauthorized)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		log.Printf("Error fetching Google user info: %v", err)
		sendJSONError(w, "Failed to fetch user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		sendJSONError(w, "Invalid user info response", http.StatusInternalServerError)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), info.Email)
	if err != nil {
		log.Printf("Error finding user by email: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if user == nil {
		// 第一次以 Google 登入，用 email 前綴當預設使用者名稱建立帳號
		username := info.Name
		if username == "" {
			username = strings.SplitN(info.Email, "@", 2)[0]
		}
		newUser := models.User{
			Email:    info.Email,
			Username: username,
			Provider: "google",
		}
		id, err := h.users.Insert(r.Context(), newUser)
		if err != nil {
			log.Printf("Error inserting Google user: %v", err)
			sendJSONError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		newUser.ID = id
		user = &newUser
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Username, h.jwtSecret)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: jwtToken, User: *user})
}
