package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Title    string `json:"title" validate:"required,max=10"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Empty(t, ValidateStruct(testPayload{Title: "Dune", ImageURL: "https://example.com/dune.jpg"}))
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	details := ValidateStruct(testPayload{ImageURL: "not a url"})

	fields := map[string]string{}
	for _, d := range details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "title is required", fields["title"])
	assert.Equal(t, "imageUrl must be a valid URL", fields["imageUrl"])
}

func TestValidateStruct_NotBlank(t *testing.T) {
	type named struct {
		Name string `json:"name" validate:"required,notblank"`
	}

	details := ValidateStruct(named{Name: " \t "})
	if assert.Len(t, details, 1) {
		assert.Equal(t, "name is required", details[0].Message)
	}
	assert.Empty(t, ValidateStruct(named{Name: " Dune "}))
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
		var p testPayload

		assert.False(t, DecodeAndValidate(w, r, &p))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})

	t.Run("validation failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":""}`))
		var p testPayload

		assert.False(t, DecodeAndValidate(w, r, &p))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Dune"}`))
		var p testPayload

		assert.True(t, DecodeAndValidate(w, r, &p))
		assert.Equal(t, "Dune", p.Title)
	})
}
