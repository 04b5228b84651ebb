package response

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, map[string]string{"hello": "world"})
	})

	require.Equal(t, 200, w.Code)
	var body SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
}

func TestDomainError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.ErrValidation, 422, "VALIDATION_FAILED"},
		{apperrors.ErrInvalidState, 409, "INVALID_STATE"},
		{apperrors.ErrConflict, 409, "RETRY_CONFLICT"},
		{apperrors.ErrNotFound, 404, ""},
		{apperrors.ErrForbidden, 403, "FORBIDDEN"},
		{apperrors.ErrUnavailable, 503, "DEPENDENCY_UNAVAILABLE"},
		{fmt.Errorf("boom"), 500, ""},
	}

	for _, tc := range cases {
		w := record(func(c *gin.Context) {
			DomainError(c, tc.err, "msg")
		})

		require.Equal(t, tc.status, w.Code, "error %v", tc.err)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "msg", body.Error)
		require.Equal(t, tc.code, body.Code)
	}
}

func TestDomainError_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: you cannot claim your own item", apperrors.ErrValidation)

	w := record(func(c *gin.Context) {
		DomainError(c, wrapped, wrapped.Error())
	})

	require.Equal(t, 422, w.Code)
}
