// Package helper shapes HTTP responses and translates request-validation
// failures into readable error bodies.
package helper

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() (*HTTPHelper, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &HTTPHelper{Validate: validate, Translator: translator}, nil
}

// ValidateStruct runs the DTO through the validator and, on failure, writes
// a 400 with per-field messages. Returns true when the request may proceed.
func (h *HTTPHelper) ValidateStruct(c *gin.Context, v interface{}) bool {
	err := h.Validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		h.SendValidationErrors(c, verrs)
		return false
	}

	h.SendBadRequest(c, err.Error())
	return false
}

func (h *HTTPHelper) SendValidationErrors(c *gin.Context, verrs validator.ValidationErrors) {
	fields := map[string][]string{}
	translated := verrs.Translate(h.Translator)
	for _, fe := range verrs {
		key := underscore(fe.Field())
		fields[key] = append(fields[key], translated[fe.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  fields,
	})
}

func (h *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func (h *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

func (h *HTTPHelper) SendForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
}

func (h *HTTPHelper) SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// SendInternalError keeps internals out of the response body; the cause is
// logged where the error surfaced.
func (h *HTTPHelper) SendInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// SendCreated writes a 201 with a Location header to the new resource.
func (h *HTTPHelper) SendCreated(c *gin.Context, location string, body interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

// underscore converts a Go field name (CoverImageURL) to its JSON-ish form
// (cover_image_url).
func underscore(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
