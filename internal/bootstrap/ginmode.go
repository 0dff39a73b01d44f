package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode maps the app environment onto gin's run mode. Anything other
// than production keeps gin's default debug output.
func SetGinMode(environment string) {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
