package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/internal/platform/apierr"
	"github.com/taskhive/taskhive/internal/platform/httpx"
)

func TestErrorMapsTaxonomyKinds(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad request", apierr.BadRequest("Title is required"), http.StatusBadRequest, "Title is required"},
		{"unauthenticated", apierr.Unauthenticated("Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{"not found", apierr.NotFound("Todo not found"), http.StatusNotFound, "Todo not found"},
		{"conflict shares the 400 class", apierr.Conflict("Email is already registered"), http.StatusBadRequest, "Email is already registered"},
		{"unrecognized is internal", errors.New("disk full"), http.StatusInternalServerError, "disk full"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := httptest.NewRecorder()
			httpx.Error(res, tc.err)
			assert.Equal(t, tc.wantStatus, res.Code)
			assert.JSONEq(t, `{"msg":"`+tc.wantMsg+`"}`, res.Body.String())
			assert.Equal(t, "application/json", res.Header().Get("Content-Type"))
		})
	}
}

func TestErrorUnwrapsWrappedTaxonomyErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apierr.NotFound("Todo not found"))
	res := httptest.NewRecorder()
	httpx.Error(res, wrapped)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
