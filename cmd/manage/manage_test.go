package main

import (
	"bytes"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/logger"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/router"
)

func TestMain(m *testing.M) {
	models.PasswordCost = bcrypt.MinCost
	m.Run()
}

func newTestManage(t *testing.T) *manage {
	t.Helper()
	cfg := config.Testing()
	cfg.Database.Path = filepath.Join(t.TempDir(), "manage.sqlite3")
	return &manage{cfg: cfg, log: logger.Discard()}
}

func run(m *manage, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCommand(m)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func openRepos(t *testing.T, m *manage) *repository.Repositories {
	t.Helper()
	db, err := m.openDB()
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(db, m.log) })
	return repository.NewFactory(db, nil).GetRepositories()
}

func TestUserCreate(t *testing.T) {
	m := newTestManage(t)

	out, err := run(m, "user", "create", "--username", "Valera", "--password", "s3cret-pass")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user Valera")

	u, err := openRepos(t, m).User.GetByUsername("Valera")
	require.NoError(t, err)
	assert.True(t, u.CheckPassword("s3cret-pass"))
}

func TestUserCreateRejectsInvalidInput(t *testing.T) {
	m := newTestManage(t)

	_, err := run(m, "user", "create", "-u", "Valera", "-p", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password1")

	_, err = run(m, "user", "create", "-u", "Valera", "-p", "s3cret-pass")
	require.NoError(t, err)

	_, err = run(m, "user", "create", "-u", "Valera", "-p", "another-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), forms.UsernameTakenMessage)

	_, err = run(m, "user", "create", "-u", "Valera")
	assert.Error(t, err, "password flag is required")
}

func TestNewsPublishAndDelete(t *testing.T) {
	m := newTestManage(t)

	out, err := run(m, "news", "publish", "--title", "Старая", "--text", "Текст", "--date", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Published news #1")

	_, err = run(m, "news", "publish", "--title", "Новая", "--text", "Текст")
	require.NoError(t, err)

	repos := openRepos(t, m)
	page, err := repos.News.GetPage(0, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Новая", page[0].Title)
	assert.Equal(t, "Старая", page[1].Title)
	assert.True(t, page[1].Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	out, err = run(m, "news", "delete", "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted news #1")

	_, err = repos.News.GetByID(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = run(m, "news", "delete", "--id", "1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNewsPublishRejectsInvalidInput(t *testing.T) {
	m := newTestManage(t)

	_, err := run(m, "news", "publish", "--text", "Текст")
	assert.Error(t, err)

	_, err = run(m, "news", "publish", "--title", "Заголовок, который явно длиннее пятидесяти символов!", "--text", "Текст")
	assert.Error(t, err)

	_, err = run(m, "news", "publish", "--title", "Заголовок", "--text", "Текст", "--date", "yesterday")
	assert.Error(t, err)
}

func TestParseNewsDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05-01 13:45", time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)},
		{"2024-05-01T13:45:00+03:00", time.Date(2024, 5, 1, 10, 45, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseNewsDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := parseNewsDate("01.05.2024")
	assert.Error(t, err)
}

func TestMigrateOnSQLite(t *testing.T) {
	m := newTestManage(t)

	out, err := run(m, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "SQLite schema is up to date")

	_, err = run(m, "migrate", "status")
	assert.ErrorIs(t, err, errMigrateSQLite)

	_, err = run(m, "migrate", "goto", "x")
	assert.Error(t, err)
}

func TestServeRejectsUnknownApplication(t *testing.T) {
	m := newTestManage(t)

	_, err := run(m, "serve", "blog")
	assert.Error(t, err)

	_, err = run(m, "serve")
	assert.Error(t, err)
}

func TestApplicationServesHealth(t *testing.T) {
	m := newTestManage(t)
	db, err := m.openDB()
	require.NoError(t, err)
	defer closeDB(db, m.log)

	for _, kind := range []router.Kind{router.News, router.Notes} {
		app, err := m.application(kind, db, nil)
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, string(kind))
	}
}
