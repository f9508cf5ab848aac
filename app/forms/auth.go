package forms

const (
	InvalidLoginMessage  = "Пожалуйста, введите правильные имя пользователя и пароль. Оба поля могут быть чувствительны к регистру."
	UsernameTakenMessage = "Пользователь с таким именем уже существует."
)

type LoginInput struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`
}

// ValidateLogin checks that both credentials were entered. The password is
// dropped from the returned form data.
func ValidateLogin(data map[string]string, password string) *Form {
	f := New(data)
	validateStruct(f, LoginInput{Username: data["username"], Password: password})
	delete(f.Data, "password")
	return f
}

// UsernameChecker reports whether a username is already registered.
type UsernameChecker interface {
	UsernameExists(username string) (bool, error)
}

type SignupInput struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// ValidateSignup checks a registration. Passwords never end up in the form
// data.
func ValidateSignup(data map[string]string, password1, password2 string, users UsernameChecker) (*Form, error) {
	f := New(data)
	validateStruct(f, SignupInput{
		Username:  data["username"],
		Password1: password1,
		Password2: password2,
	})
	delete(f.Data, "password1")
	delete(f.Data, "password2")

	if f.HasError("username") {
		return f, nil
	}

	taken, err := users.UsernameExists(data["username"])
	if err != nil {
		return f, err
	}
	if taken {
		f.AddError("username", UsernameTakenMessage)
	}
	return f, nil
}
