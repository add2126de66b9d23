package tool

import "github.com/gin-gonic/gin"

func FastReturnError(msg string) gin.H {
	return gin.H{
		"error": msg,
	}
}

func FastReturnSuccess() gin.H {
	return gin.H{
		"success": true,
	}
}

func FastReturnFailure() gin.H {
	return gin.H{
		"success": false,
	}
}
