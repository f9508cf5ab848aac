package controllers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

// NewsController serves the public news pages and the comment form under
// each article.
type NewsController struct {
	*Base
	newsRepo    repository.NewsRepository
	commentRepo repository.CommentRepository
	pageSize    int
}

func NewNewsController(base *Base, newsRepo repository.NewsRepository, commentRepo repository.CommentRepository, pageSize int) *NewsController {
	if pageSize < 1 {
		pageSize = 10
	}
	return &NewsController{
		Base:        base,
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		pageSize:    pageSize,
	}
}

// HandleHome lists the newest news, one page at a time.
func (nc *NewsController) HandleHome(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	newsList := []models.News{}
	hasNext := false
	// Pages whose offset does not fit an int lie past the end anyway.
	if page <= math.MaxInt/nc.pageSize {
		offset := (page - 1) * nc.pageSize
		newsList, err = nc.newsRepo.GetPage(offset, nc.pageSize)
		if err != nil {
			return fmt.Errorf("load news page %d: %w", page, err)
		}
		total, err := nc.newsRepo.Count()
		if err != nil {
			return fmt.Errorf("count news: %w", err)
		}
		hasNext = int64(offset+len(newsList)) < total
	}

	return nc.render(c, "news/home", fiber.Map{
		"object_list":  newsList,
		"page":         page,
		"has_next":     hasNext,
		"has_previous": page > 1,
	})
}

// HandleDetail shows one article with its comments. Only logged-in users
// get the comment form.
func (nc *NewsController) HandleDetail(c *fiber.Ctx) error {
	news, err := nc.loadNews(c)
	if err != nil {
		return err
	}

	var form *forms.Form
	if usercontext.IsLoggedIn(c) {
		form = forms.Empty()
	}
	return nc.renderDetail(c, news, form)
}

// HandleAddComment stores a comment of the current user and jumps back to the
// comment list. RequireAuth runs before it.
func (nc *NewsController) HandleAddComment(c *fiber.Ctx) error {
	news, err := nc.loadNews(c)
	if err != nil {
		return err
	}

	form := forms.ValidateComment(formValues(c, "text"))
	if !form.Valid() {
		if forms.ContainsBadWord(form.Get("text")) {
			nc.Metrics.BadWordsBlocked.Inc()
		}
		return nc.renderDetail(c, news, form)
	}

	comment := &models.Comment{
		NewsID:   news.ID,
		AuthorID: usercontext.GetUserID(c),
		Text:     form.Get("text"),
	}
	if err := nc.commentRepo.Create(comment); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	nc.Metrics.CommentsCreated.Inc()
	nc.statsChanged(c)
	nc.Log.WithField("news_id", news.ID).WithField("comment_id", comment.ID).Info("comment created")

	return redirect(c, NewsCommentsURL(news.ID))
}

func (nc *NewsController) loadNews(c *fiber.Ctx) (*models.News, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return nil, err
	}
	news, err := nc.newsRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return news, nil
}

func (nc *NewsController) renderDetail(c *fiber.Ctx, news *models.News, form *forms.Form) error {
	data := fiber.Map{
		"news":     news,
		"comments": news.Comments,
	}
	if form != nil {
		data["form"] = form
	}
	return nc.render(c, "news/detail", data)
}

func NewsURL(id uint) string {
	return fmt.Sprintf("/news/%d/", id)
}

// NewsCommentsURL points at the comment list of an article.
func NewsCommentsURL(id uint) string {
	return NewsURL(id) + constants.CommentsFragment
}
