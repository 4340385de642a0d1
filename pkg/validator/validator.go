package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hash256Re = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

	initOnce sync.Once
	initErr  error
)

// IsHash256 reports whether s is exactly 64 hex characters (block hash or txid).
func IsHash256(s string) bool {
	return hash256Re.MatchString(s)
}

// Init registers the custom tags on gin's binding validator.
func Init() error {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			initErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		initErr = v.RegisterValidation("hash256", func(fl validator.FieldLevel) bool {
			return IsHash256(fl.Field().String())
		})
	})
	return initErr
}

// GetErrorMsg translates validation errors into user-friendly messages
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var errMsgs []string
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			param := e.Param()

			switch e.Tag() {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s is required", field))
			case "hash256":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be 64 hexadecimal characters", field))
			case "alphanum":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be alphanumeric", field))
			case "min":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be at least %s", field, param))
			case "max":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be at most %s characters", field, param))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s failed %s validation", field, e.Tag()))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	if err != nil && strings.Contains(err.Error(), "strconv.") {
		return "invalid number"
	}
	return "invalid request parameter"
}
