package main

import (
	"log"
	"strings"
	"time"

	"gallery/auth"
	"gallery/config"
	"gallery/db"
	"gallery/handlers"
	"gallery/models"
	"gallery/storage"
	"gallery/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/file/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	// Custom Auth Router - resolves the acting user for every route below
	authRouter := &auth.Router{Base: router}
	// User handlers
	router.POST("/user/register", handlers.UserRegister)
	router.POST("/user/login", handlers.UserLogin)
	authRouter.POST("/user/logout", handlers.UserLogout)
	authRouter.GET("/user/list", handlers.UserList)
	authRouter.POST("/user/delete", handlers.UserDelete) // admin check in service
	// Profile handlers
	authRouter.GET("/profile/:name", handlers.ProfileShow)
	authRouter.POST("/profile/save", handlers.ProfileSave)
	authRouter.POST("/profile/photo", handlers.ProfilePhoto)
	authRouter.POST("/account/delete", handlers.AccountDelete)
	// Photo handlers
	authRouter.GET("/photo/feed", handlers.PhotoFeed)
	authRouter.POST("/photo/upload", handlers.PhotoUpload)
	authRouter.GET("/photo/get", handlers.PhotoGet)
	authRouter.POST("/photo/save", handlers.PhotoSave)
	authRouter.POST("/photo/delete", handlers.PhotoDelete)
	authRouter.POST("/photo/like", handlers.PhotoLike)
	// Comment handlers
	authRouter.GET("/photo/comments", handlers.CommentList)
	authRouter.POST("/photo/comment", handlers.CommentCreate)
	authRouter.POST("/comment/delete", handlers.CommentDelete)
	// Stored files (profile images load on public pages too)
	router.GET("/file/*path", handlers.FileFetch)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
