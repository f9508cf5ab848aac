package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/app/controllers"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
)

type NewsRouter struct {
	news     *controllers.NewsController
	comments *controllers.CommentController
}

func NewNewsRouter(news *controllers.NewsController, comments *controllers.CommentController) *NewsRouter {
	return &NewsRouter{news: news, comments: comments}
}

func (n NewsRouter) InstallRouter(app *fiber.App) {
	auth := requireAuth()

	app.Get(constants.PublicRoute, n.news.HandleHome)
	app.Get(constants.NewsDetailRoute, n.news.HandleDetail)
	app.Post(constants.NewsDetailRoute, auth, n.news.HandleAddComment)

	app.Get(constants.CommentEditRoute, auth, n.comments.HandleEdit)
	app.Post(constants.CommentEditRoute, auth, n.comments.HandleEdit)
	app.Get(constants.CommentDeleteRoute, auth, n.comments.HandleDeleteConfirm)
	app.Post(constants.CommentDeleteRoute, auth, n.comments.HandleDelete)
	app.Delete(constants.CommentDeleteRoute, auth, n.comments.HandleDelete)
}
