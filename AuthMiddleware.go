package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates /api routes on a live session. Pages redirect to the
// login entry point when they receive 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		studentID := CurrentStudentID(c)
		if studentID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			c.Abort()
			return
		}

		// Attach student ID to context
		c.Set("student_id", studentID)

		c.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
