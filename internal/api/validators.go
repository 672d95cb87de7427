package api

import (
	"fmt"
	"herbal/internal/i18n"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const defaultTheme = "light"

var supportedThemes = map[string]struct{}{
	"light": {},
	"dark":  {},
}

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

func validTheme(theme string) bool {
	_, ok := supportedThemes[theme]
	return ok
}

// registerValidators adds the "lang" and "theme" tags to gin's validator.
func registerValidators() error {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := engine.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
			return i18n.Supported(fl.Field().String())
		}); err != nil {
			validatorsErr = err
			return
		}
		validatorsErr = engine.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return validTheme(fl.Field().String())
		})
	})
	return validatorsErr
}

// languageParam and themeParam bind the preference path segments.
type languageParam struct {
	Lang string `uri:"lang" binding:"required,lang"`
}

type themeParam struct {
	Theme string `uri:"theme" binding:"required,theme"`
}
