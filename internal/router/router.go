package router

import (
	"github.com/gin-gonic/gin"

	"github.com/axiomhq/nhuff/internal/handler"
)

type Dependencies struct {
	TableHandler *handler.TableHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		tables := v1.Group("/tables")
		{
			tables.GET("", d.TableHandler.List)
			tables.POST("/:name", d.TableHandler.Create)
			tables.GET("/:name", d.TableHandler.GetByName)
			tables.POST("/:name/encode", d.TableHandler.Encode)
			tables.POST("/:name/decode", d.TableHandler.Decode)
		}
	}
}
