package validator

import (
	"errors"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	alphaSpaceRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)
	usernameRegex   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	mobileRegex     = regexp.MustCompile(`^\d{15}$`)
)

var once sync.Once
var validate *validator.Validate

func getValidator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// the patterns are constants, registration cannot fail
		_ = v.RegisterValidation("alphaspace", matchString(alphaSpaceRegex))
		_ = v.RegisterValidation("username", matchString(usernameRegex))
		_ = v.RegisterValidation("mobile", matchString(mobileRegex))
		validate = v
	})
	return validate
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func ValidateStruct(s interface{}) error {
	return getValidator().Struct(s)
}

// ValidateVar validates a single value against a tag expression such as
// "required,email".
func ValidateVar(field interface{}, tag string) error {
	return getValidator().Var(field, tag)
}

// FailedTag returns the tag of the first failed rule, or "" when err is not
// a validation error.
func FailedTag(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	return verrs[0].Tag()
}

func TranslateError(err error) map[string]string {
	errs := make(map[string]string)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}
	for _, e := range verrs {
		errs[e.Namespace()] = e.Error()
	}
	return errs
}
