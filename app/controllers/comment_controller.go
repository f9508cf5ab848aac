package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

// CommentController lets authors edit and delete their own comments. Other
// users get a 404, as if the comment did not exist.
type CommentController struct {
	*Base
	commentRepo repository.CommentRepository
}

func NewCommentController(base *Base, commentRepo repository.CommentRepository) *CommentController {
	return &CommentController{Base: base, commentRepo: commentRepo}
}

func (cc *CommentController) HandleEdit(c *fiber.Ctx) error {
	comment, err := cc.loadOwnComment(c)
	if err != nil {
		return err
	}

	if c.Method() != fiber.MethodPost {
		form := forms.New(map[string]string{"text": comment.Text})
		return cc.renderEdit(c, comment, form)
	}

	form := forms.ValidateComment(formValues(c, "text"))
	if !form.Valid() {
		if forms.ContainsBadWord(form.Get("text")) {
			cc.Metrics.BadWordsBlocked.Inc()
		}
		return cc.renderEdit(c, comment, form)
	}

	if err := cc.commentRepo.UpdateText(comment, form.Get("text")); err != nil {
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}
	cc.Metrics.CommentsEdited.Inc()

	return redirect(c, NewsCommentsURL(comment.NewsID))
}

// HandleDeleteConfirm shows the confirmation page.
func (cc *CommentController) HandleDeleteConfirm(c *fiber.Ctx) error {
	comment, err := cc.loadOwnComment(c)
	if err != nil {
		return err
	}
	return cc.render(c, "news/comment_delete", fiber.Map{"comment": comment})
}

func (cc *CommentController) HandleDelete(c *fiber.Ctx) error {
	comment, err := cc.loadOwnComment(c)
	if err != nil {
		return err
	}

	if err := cc.commentRepo.Delete(comment); err != nil {
		return fmt.Errorf("delete comment %d: %w", comment.ID, err)
	}
	cc.Metrics.CommentsDeleted.Inc()
	cc.statsChanged(c)
	cc.Log.WithField("comment_id", comment.ID).Info("comment deleted")

	return redirect(c, NewsCommentsURL(comment.NewsID))
}

func (cc *CommentController) loadOwnComment(c *fiber.Ctx) (*models.Comment, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return nil, err
	}
	comment, err := cc.commentRepo.GetByIDForAuthor(id, usercontext.GetUserID(c))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return comment, nil
}

func (cc *CommentController) renderEdit(c *fiber.Ctx, comment *models.Comment, form *forms.Form) error {
	return cc.render(c, "news/comment_edit", fiber.Map{
		"comment": comment,
		"form":    form,
	})
}
