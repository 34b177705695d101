package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the versioned API group.
// Protected routes sit behind the authorization middleware when one is configured.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
