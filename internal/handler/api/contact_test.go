//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"guesthouse-booking/internal/handler/api"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/middleware"
	"guesthouse-booking/tests/common/httptest"
	"guesthouse-booking/tests/common/testutil"
	commandsmock "guesthouse-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()

	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockContactCommands(ctrl)
	router := gin.New()
	router.POST("/contact", api.NewContactHandler(cmds).Submit)

	reqBody := reqdto.ContactRequest{
		Name:    "Karim",
		Email:   "karim@example.com",
		Message: "Do you have parking?",
	}

	t.Run("success without phone", func(t *testing.T) {
		id := uuid.New()
		cmds.EXPECT().SubmitContact(gomock.Any(), reqBody).Return(id, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/contact", reqBody, "")

		var response resdto.ContactResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &response)
		assert.Equal(t, id, response.ID)
	})

	t.Run("validation", func(t *testing.T) {
		for name, mutate := range map[string]func(map[string]any){
			"missing name":     testutil.Field("name", nil),
			"invalid email":    testutil.Field("email", "karim"),
			"empty message":    testutil.Field("message", ""),
			"invalid phone":    testutil.Field("phone", "???"),
			"message too long": testutil.Field("message", strings.Repeat("x", 2001)),
		} {
			t.Run(name, func(t *testing.T) {
				rec := httptest.PerformRequest(t, router, http.MethodPost, "/contact", testutil.DtoMap(t, reqBody, mutate), "")
				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		cmds.EXPECT().SubmitContact(gomock.Any(), reqBody).Return(uuid.Nil, errors.New("disk full"))

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/contact", reqBody, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
