package middleware

import (
	"errors"
	"net/http"

	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const pathKey = "resolved_path"

// PathParam binds a route parameter to the kind of resource it names
type PathParam struct {
	Kind  services.Kind
	Param string
}

// ResolvePath loads every resource named in the URL, outermost first, and
// aborts with 404 when any of them is missing or belongs to another parent.
func ResolvePath(resolver *services.Resolver, params ...PathParam) gin.HandlerFunc {
	return func(c *gin.Context) {
		segments := make([]services.Segment, 0, len(params))
		for _, p := range params {
			segments = append(segments, services.Segment{Kind: p.Kind, ID: c.Param(p.Param)})
		}

		path, err := resolver.Resolve(c.Request.Context(), segments...)
		if errors.Is(err, services.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to resolve resource path")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(pathKey, path)
		c.Next()
	}
}

// GetPath returns the path resolved by ResolvePath
func GetPath(c *gin.Context) *services.Path {
	if path, ok := c.Get(pathKey); ok {
		return path.(*services.Path)
	}
	return &services.Path{}
}
