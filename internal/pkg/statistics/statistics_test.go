package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/database/dbtest"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/logger"
)

func seed(t *testing.T) *repository.Repositories {
	t.Helper()
	repos := repository.NewFactory(dbtest.New(t), nil).GetRepositories()

	author := &models.User{Username: "Valera", Password: "x"}
	require.NoError(t, repos.User.Create(author))
	require.NoError(t, repos.User.Create(&models.User{Username: "Oleg", Password: "x"}))

	news := &models.News{Title: "Заголовок", Text: "Текст"}
	require.NoError(t, repos.News.Create(news))
	require.NoError(t, repos.Note.Create(&models.Note{Title: "Заметка", Text: "Текст", Slug: "zametka", AuthorID: author.ID}))

	return repos
}

func TestGetCountsWithoutCache(t *testing.T) {
	repos := seed(t)
	s := New(repos, nil, logger.WithSubsystem(logger.Discard(), "statistics"))

	assert.Equal(t, Data{Users: 2, News: 1, Comments: 0, Notes: 1}, s.Get(context.Background()))

	require.NoError(t, repos.News.Create(&models.News{Title: "Ещё", Text: "Текст"}))
	assert.Equal(t, int64(2), s.Get(context.Background()).News)
	assert.NoError(t, s.Reset(context.Background()))
}

func TestGetFallsBackWhenCacheIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	s := New(seed(t), client, logger.WithSubsystem(logger.Discard(), "statistics"))

	assert.Equal(t, Data{Users: 2, News: 1, Comments: 0, Notes: 1}, s.Get(context.Background()))
	assert.Error(t, s.Reset(context.Background()))
}
