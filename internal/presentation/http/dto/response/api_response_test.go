package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blueverse/blueverse-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorAppErrorPassesThrough(t *testing.T) {
	c, w := testContext()

	Error(c, apperror.NewNotFoundError("Customer"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Customer not found.")
	assert.Empty(t, c.Errors)
}

func TestErrorMasksUnexpectedErrors(t *testing.T) {
	c, w := testContext()

	driverErr := errors.New(`pq: password authentication failed for user "postgres" host=db.internal`)
	Error(c, driverErr)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.NotContains(t, w.Body.String(), "db.internal")

	// The original error stays on the context for the request logger.
	require.Len(t, c.Errors, 1)
	assert.Equal(t, driverErr, c.Errors[0].Err)
}
