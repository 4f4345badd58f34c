package handler

import "github.com/gin-gonic/gin"

// Handlers groups the handlers mounted by RegisterRoutes. Health may be nil.
type Handlers struct {
	Articles *ArticleHandler
	Comments *CommentHandler
	Images   *ImageHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the blog API and probe endpoints.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	if h.Health != nil {
		router.GET("/health", h.Health.Health)
		router.GET("/ready", h.Health.Ready)
		router.GET("/live", h.Health.Live)
	}

	api := router.Group("/api")
	{
		blogs := api.Group("/blogs")
		{
			blogs.GET("", h.Articles.ListArticles)
			blogs.GET("/:id", h.Articles.GetArticle)
			blogs.POST("/create", h.Articles.CreateArticle)
			blogs.PUT("/edit/:id", h.Articles.UpdateArticle)
			blogs.DELETE("/delete/:id", h.Articles.DeleteArticle)
		}

		comments := api.Group("/comment")
		{
			comments.GET("/:id", h.Comments.ListComments)
			comments.POST("/create", h.Comments.CreateComment)
			comments.DELETE("/delete/:commentId", h.Comments.DeleteComment)
		}

		api.GET("/:filename", h.Images.GetImage)
	}
}
