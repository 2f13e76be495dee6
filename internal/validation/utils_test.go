package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deadpoolio/chimichangapp/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name       string `json:"name" validate:"required"`
	Q          string `query:"q" validate:"omitempty,min=3,max=5"`
	Importance int    `json:"importance" validate:"omitempty,gt=0"`
	Mode       string `query:"mode" validate:"omitempty,oneof=fast slow"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

func newContext(t *testing.T, target, body string) echo.Context {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(http.MethodPost, target, nil)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

// fieldErrors runs BindAndValidate and extracts the HTTPError field
// errors as a field -> message map.
func fieldErrors(t *testing.T, c echo.Context, payload Validatable) map[string]string {
	t.Helper()

	err := BindAndValidate(c, payload)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	out := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, "/?q=abc&mode=fast", `{"name":"ok","importance":2}`)

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "ok", payload.Name)
	assert.Equal(t, "abc", payload.Q)
	assert.Equal(t, 2, payload.Importance)
}

func TestBindAndValidateFieldMessages(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		fes := fieldErrors(t, newContext(t, "/", `{}`), &samplePayload{})
		assert.Equal(t, "is required", fes["name"])
	})

	t.Run("min on strings reports characters", func(t *testing.T) {
		fes := fieldErrors(t, newContext(t, "/?q=ab", `{"name":"ok"}`), &samplePayload{})
		assert.Equal(t, "must be at least 3 characters", fes["q"])
	})

	t.Run("max on strings reports characters", func(t *testing.T) {
		fes := fieldErrors(t, newContext(t, "/?q=toolong", `{"name":"ok"}`), &samplePayload{})
		assert.Equal(t, "must not exceed 5 characters", fes["q"])
	})

	t.Run("gt", func(t *testing.T) {
		fes := fieldErrors(t, newContext(t, "/", `{"name":"ok","importance":-1}`), &samplePayload{})
		assert.Equal(t, "must be greater than 0", fes["importance"])
	})

	t.Run("oneof", func(t *testing.T) {
		fes := fieldErrors(t, newContext(t, "/?mode=medium", `{"name":"ok"}`), &samplePayload{})
		assert.Equal(t, "must be one of: fast slow", fes["mode"])
	})
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(t, "/", `{"name":`)

	err := BindAndValidate(c, &samplePayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	// Malformed JSON has no single field to blame.
	assert.Empty(t, httpErr.Errors)
}
