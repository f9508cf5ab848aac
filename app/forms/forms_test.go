package forms

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slugSet map[string]uint

func (s slugSet) SlugExistsExceptID(slug string, id uint) (bool, error) {
	owner, ok := s[slug]
	return ok && owner != id, nil
}

type failingChecker struct{}

func (failingChecker) SlugExistsExceptID(string, uint) (bool, error) {
	return false, errors.New("db down")
}

func (failingChecker) UsernameExists(string) (bool, error) {
	return false, errors.New("db down")
}

type usernames map[string]bool

func (u usernames) UsernameExists(name string) (bool, error) {
	return u[name], nil
}

func TestCommentWithBadWords(t *testing.T) {
	for _, word := range BadWords {
		text := "Какой-то текст, " + word + ", еще текст"
		f := ValidateComment(map[string]string{"text": text})

		assert.False(t, f.Valid(), word)
		assert.Equal(t, []string{BadWordsWarning}, f.Errors["text"])
	}
}

func TestCommentBadWordInsideAnotherWord(t *testing.T) {
	f := ValidateComment(map[string]string{"text": "Сегодня редиска1 на рынке"})
	assert.Contains(t, f.Errors["text"], BadWordsWarning)
}

func TestCommentBadWordIsCaseSensitive(t *testing.T) {
	f := ValidateComment(map[string]string{"text": "РЕДИСКА"})
	assert.True(t, f.Valid())
}

func TestCleanComment(t *testing.T) {
	f := ValidateComment(map[string]string{"text": "Хорошая новость"})
	assert.True(t, f.Valid())
	assert.Equal(t, "Хорошая новость", f.Get("text"))
}

func TestEmptyComment(t *testing.T) {
	f := ValidateComment(map[string]string{"text": ""})
	assert.Equal(t, []string{RequiredMessage}, f.Errors["text"])
}

func TestNoteSlugDerivedFromTitle(t *testing.T) {
	f, err := ValidateNote(map[string]string{"title": "Заголовок", "text": "Текст", "slug": ""}, slugSet{}, 0)
	require.NoError(t, err)

	assert.True(t, f.Valid())
	assert.Equal(t, "zagolovok", f.Get("slug"))
}

func TestNoteDerivedSlugKeepsEdgeSeparators(t *testing.T) {
	f, err := ValidateNote(map[string]string{"title": "Что это ?", "text": "Текст"}, slugSet{}, 0)
	require.NoError(t, err)

	assert.True(t, f.Valid())
	assert.Equal(t, "chto-eto-", f.Get("slug"))
}

func TestNoteDerivedSlugIsTruncated(t *testing.T) {
	title := strings.Repeat("я", 60)
	f, err := ValidateNote(map[string]string{"title": title, "text": "Текст"}, slugSet{}, 0)
	require.NoError(t, err)

	assert.True(t, f.Valid())
	assert.Len(t, f.Get("slug"), SlugMaxLength)
}

func TestNoteDuplicateSlug(t *testing.T) {
	slugs := slugSet{"zagolovok": 1}

	f, err := ValidateNote(map[string]string{"title": "Другой", "text": "Текст", "slug": "zagolovok"}, slugs, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"zagolovok" + SlugWarning}, f.Errors["slug"])

	f, err = ValidateNote(map[string]string{"title": "Заголовок", "text": "Текст"}, slugs, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{DuplicateSlugMessage("zagolovok")}, f.Errors["slug"])
}

func TestNoteEditKeepsOwnSlug(t *testing.T) {
	slugs := slugSet{"zagolovok": 1}

	f, err := ValidateNote(map[string]string{"title": "Заголовок", "text": "Новый текст", "slug": "zagolovok"}, slugs, 1)
	require.NoError(t, err)
	assert.True(t, f.Valid())
}

func TestNoteInvalidInput(t *testing.T) {
	f, err := ValidateNote(map[string]string{"title": "", "text": "", "slug": "не slug"}, slugSet{}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{RequiredMessage}, f.Errors["title"])
	assert.Equal(t, []string{RequiredMessage}, f.Errors["text"])
	assert.Equal(t, []string{SlugMessage}, f.Errors["slug"])

	f, err = ValidateNote(map[string]string{"title": strings.Repeat("a", 101), "text": "x"}, slugSet{}, 0)
	require.NoError(t, err)
	assert.True(t, f.HasError("title"))
}

func TestNoteTitleWithoutSlugCharacters(t *testing.T) {
	f, err := ValidateNote(map[string]string{"title": "!!!", "text": "x"}, slugSet{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{RequiredMessage}, f.Errors["slug"])
}

func TestNoteLookupFailure(t *testing.T) {
	_, err := ValidateNote(map[string]string{"title": "a", "text": "b"}, failingChecker{}, 0)
	assert.Error(t, err)
}

func TestLoginDropsPassword(t *testing.T) {
	f := ValidateLogin(map[string]string{"username": "user", "password": "secret"}, "secret")
	assert.True(t, f.Valid())
	assert.NotContains(t, f.Data, "password")

	f = ValidateLogin(map[string]string{"username": ""}, "")
	assert.True(t, f.HasError("username"))
	assert.True(t, f.HasError("password"))
}

func TestSignup(t *testing.T) {
	taken := usernames{"Valera": true}

	f, err := ValidateSignup(map[string]string{"username": "Igor"}, "long-password", "long-password", taken)
	require.NoError(t, err)
	assert.True(t, f.Valid())
	assert.NotContains(t, f.Data, "password1")

	f, err = ValidateSignup(map[string]string{"username": "Valera"}, "long-password", "long-password", taken)
	require.NoError(t, err)
	assert.Equal(t, []string{UsernameTakenMessage}, f.Errors["username"])

	f, err = ValidateSignup(map[string]string{"username": "Igor"}, "short", "short", taken)
	require.NoError(t, err)
	assert.True(t, f.HasError("password1"))

	f, err = ValidateSignup(map[string]string{"username": "Igor"}, "long-password", "other-password", taken)
	require.NoError(t, err)
	assert.Equal(t, []string{MismatchMessage}, f.Errors["password2"])

	f, err = ValidateSignup(map[string]string{"username": "bad name"}, "long-password", "long-password", taken)
	require.NoError(t, err)
	assert.Equal(t, []string{UsernameMessage}, f.Errors["username"])

	_, err = ValidateSignup(map[string]string{"username": "Igor"}, "long-password", "long-password", failingChecker{})
	assert.Error(t, err)
}
