package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// PayloadValidator validates request payloads and renders field errors in
// plain English.
type PayloadValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewPayloadValidator() *PayloadValidator {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = entranslations.RegisterDefaultTranslations(validate, trans)

	return &PayloadValidator{
		validate: validate,
		trans:    trans,
	}
}

// check validates v, answering 400 with the translated field errors on
// failure. Returns false when the caller should stop.
func (pv *PayloadValidator) check(w http.ResponseWriter, v any) bool {
	err := pv.validate.Struct(v)
	if err == nil {
		return true
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Translate(pv.trans))
	}

	writeMessage(w, http.StatusBadRequest, strings.Join(messages, "; "))

	return false
}
