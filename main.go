package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors" // 引入 CORS 庫

	"go-gather/backend/chatroom"
	"go-gather/backend/config"
	"go-gather/backend/database"
	"go-gather/backend/handlers"
	"go-gather/backend/middleware"
	"go-gather/backend/store"
	ws "go-gather/backend/websocket"
)

func main() {
	cfg := config.LoadConfig()

	database.ConnectMongoDB(cfg.MongoDBURI, cfg.DBName)
	defer database.DisconnectMongoDB()

	// REDIS_ADDR 留空時不啟用最近訊息快取
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis not reachable at %s, recent-message cache disabled: %v", cfg.RedisAddr, err)
			rdb = nil
		} else {
			log.Println("Connected to Redis, recent-message cache enabled.")
		}
	}

	// 持久層
	userStore := store.NewMongoUserStore(database.GetCollection(database.UsersCollection))
	postsStore := store.NewMongoPostsStore(database.GetCollection(database.PostsCollection))
	roomStore := store.NewMongoChatRoomStore(database.GetCollection(database.ChatRoomsCollection))
	textStore := store.NewMongoChatTextStore(database.GetCollection(database.ChatTextsCollection))

	// 服務層
	roomService := chatroom.NewRoomService(roomStore, userStore, postsStore, textStore)
	textService := chatroom.NewTextService(textStore, roomStore, userStore, rdb)

	// 在線狀態表：伺服器啟動時建立、隨伺服器結束，一律走注入不走全域
	registry := ws.NewRegistry()
	chatHandler := ws.NewRoomChatHandler(registry, roomStore, userStore, textService)

	authHandler := handlers.NewAuthHandler(userStore, cfg.JWTSecret,
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	roomHandler := handlers.NewChatRoomHandler(roomService, textService, registry)
	postsHandler := handlers.NewPostsHandler(postsStore, roomService)

	router := mux.NewRouter()

	// 健康檢查路由
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Backend is running!")
	}).Methods("GET")

	// 註冊與登入 API 路由
	router.HandleFunc("/register", authHandler.RegisterUser).Methods("POST")
	router.HandleFunc("/login", authHandler.LoginUser).Methods("POST")
	router.HandleFunc("/auth/google", authHandler.GoogleLogin).Methods("GET")
	router.HandleFunc("/auth/google/callback", authHandler.GoogleCallback).Methods("GET")

	// WebSocket 連線路由（授權在交握參數內完成，不走 JWT 中介軟體）
	router.HandleFunc("/ws/chat", chatHandler.HandleRoomChat)

	// 聊天室 API 路由，需通過 JWT 驗證
	jwtMiddleware := middleware.JWTMiddleware(cfg.JWTSecret)
	api := router.PathPrefix("/chatrooms").Subrouter()
	api.Use(jwtMiddleware)
	api.HandleFunc("", roomHandler.CreateChatRoom).Methods("POST")
	api.HandleFunc("", roomHandler.Index).Methods("GET")
	api.HandleFunc("/{id}", roomHandler.Show).Methods("GET")
	api.HandleFunc("/{id}/invite", roomHandler.InviteUsers).Methods("PUT")
	api.HandleFunc("/{id}/remove", roomHandler.RemoveUsers).Methods("PUT")
	api.HandleFunc("/{id}/texts", roomHandler.RecentTexts).Methods("GET")

	// 招募貼文 API 路由，同樣走 JWT 驗證
	// 刪除貼文會連鎖刪除聊天室與訊息
	postsAPI := router.PathPrefix("/posts").Subrouter()
	postsAPI.Use(jwtMiddleware)
	postsAPI.HandleFunc("", postsHandler.CreatePosts).Methods("POST")
	postsAPI.HandleFunc("/{id}", postsHandler.DeletePosts).Methods("DELETE")

	// 設置 CORS 中介軟體
	// 實際生產環境中，AllowedOrigins 應限制為你的前端網域
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// 將 CORS 中介軟體應用到路由上
	handler := c.Handler(router)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// 如果錯誤不是因為主動關閉伺服器，就記錄錯誤並結束程式
			log.Fatalf("Could not listen on %s: %v", serverAddr, err)
		}
	}()

	//當按下 Ctrl+C，程式會收到 SIGINT
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal %s, shutting down server...", sig)

	//最多等30秒關閉，避免資料損壞，請求中斷
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully.")
}
