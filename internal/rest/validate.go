package rest

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/feed-engagement/domain"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "entitykind" tag to gin's validator.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation("entitykind", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseEntityKind(fl.Field().String())
			return err == nil
		})
	})
	return registerErr
}
