package forms

import "strings"

// BadWordsWarning is the only error a comment with a blocked word gets.
const BadWordsWarning = "Не ругайтесь!"

// BadWords are rejected anywhere inside a comment, matched case-sensitively.
var BadWords = []string{
	"редиска",
	"негодяй",
}

type CommentInput struct {
	Text string `form:"text" validate:"required"`
}

// ValidateComment checks a submitted comment. Data must contain "text".
func ValidateComment(data map[string]string) *Form {
	f := New(data)
	validateStruct(f, CommentInput{Text: data["text"]})

	if ContainsBadWord(data["text"]) {
		f.AddError("text", BadWordsWarning)
	}
	return f
}

func ContainsBadWord(text string) bool {
	for _, word := range BadWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
