package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrBusiness_SentinelsMatchWithErrorsIs(t *testing.T) {
	sentinel := ErrBusiness("slot_conflict")
	wrapped := fmt.Errorf("create: %w", ErrBusiness("slot_conflict"))

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(wrapped, ErrBusiness("already_paid")))

	be, ok := AsBusiness(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindConflict, be.Kind)
}

func TestErrBusiness_UnknownCodeIsValidation(t *testing.T) {
	be, ok := AsBusiness(ErrBusiness("something_new"))
	require.True(t, ok)
	assert.Equal(t, KindValidation, be.Kind)
	assert.Equal(t, "something_new", be.Message)
}

func TestStatusFor(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:     http.StatusNotFound,
		KindValidation:   http.StatusUnprocessableEntity,
		KindConflict:     http.StatusConflict,
		KindForbidden:    http.StatusForbidden,
		KindInvalidState: http.StatusConflict,
		Kind(""):         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusFor(kind), string(kind))
	}
}

func TestIsExclusionConflict(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	assert.True(t, IsExclusionConflict(err))
	assert.False(t, IsUniqueViolation(err))
	assert.False(t, IsExclusionConflict(errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("save: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsExclusionConflict(err))
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, ErrBusiness("cash_requires_provider"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"cash_requires_provider"`)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	FromError(c, errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, c.Errors, 1)
}
