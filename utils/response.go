package utils

import "github.com/gin-gonic/gin"

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONError writes {"error": message, "details": details}; details is left out
// when empty.
func JSONError(c *gin.Context, code int, message string, details string) {
	body := gin.H{"error": message}
	if details != "" {
		body["details"] = details
	}
	c.JSON(code, body)
}
