package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/app/controllers"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
)

type NotesRouter struct {
	main  *controllers.MainController
	notes *controllers.NoteController
}

func NewNotesRouter(main *controllers.MainController, notes *controllers.NoteController) *NotesRouter {
	return &NotesRouter{main: main, notes: notes}
}

func (n NotesRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.PublicRoute, n.main.HandleHome)

	// everything else belongs to the logged-in user
	auth := requireAuth()
	app.Get(constants.NotesListRoute, auth, n.notes.HandleList)
	app.Get(constants.NoteAddRoute, auth, n.notes.HandleAdd)
	app.Post(constants.NoteAddRoute, auth, n.notes.HandleAdd)
	app.Get(constants.NoteDoneRoute, auth, n.notes.HandleDone)
	app.Get(constants.NoteDetailRoute, auth, n.notes.HandleDetail)
	app.Get(constants.NoteEditRoute, auth, n.notes.HandleEdit)
	app.Post(constants.NoteEditRoute, auth, n.notes.HandleEdit)
	app.Get(constants.NoteDeleteRoute, auth, n.notes.HandleDeleteConfirm)
	app.Post(constants.NoteDeleteRoute, auth, n.notes.HandleDelete)
}
