package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// internalErrorMessage はパニック時に返す固定メッセージ。詳細は呼び出し元に返さない。
const internalErrorMessage = "Internal server error"

// Recovery はパニックからの回復を行うGinミドルウェアを返す。
// パニック発生時にスタックトレースをログに出力し、共通レスポンス形式の500を返す。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, r, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"id":        nil,
					"message":   internalErrorMessage,
					"timestamp": time.Now().UTC(),
				})
			}
		}()
		c.Next()
	}
}
