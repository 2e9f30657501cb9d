package v1beta1_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goto/approvals/api/handler/v1beta1"
	"github.com/goto/approvals/api/handler/v1beta1/mocks"
	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
)

func TestErrorStatuses(t *testing.T) {
	validationErr := validator.New().Struct(domain.RequestContext{})

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"validation error", fmt.Errorf("validating: %w", validationErr), http.StatusBadRequest},
		{"invalid condition", domain.ErrInvalidCondition, http.StatusBadRequest},
		{"invalid action", approval.ErrInvalidAction, http.StatusBadRequest},
		{"unauthorized actor", fmt.Errorf("%w: %q", domain.ErrUnauthorizedActor, "x"), http.StatusForbidden},
		{"not found", approval.ErrInstanceNotFound, http.StatusNotFound},
		{"not pending", domain.ErrNotPending, http.StatusConflict},
		{"stale", fmt.Errorf("updating instance: %w", domain.ErrStaleInstance), http.StatusConflict},
		{"unresolved role", domain.ErrUnresolvedRole, http.StatusUnprocessableEntity},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			approvalService := mocks.NewApprovalService(t)
			approvalService.EXPECT().
				GetInstance(mock.Anything, "instance-id").
				Return(nil, tc.err).Once()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			v1beta1.NewServer(nil, approvalService, nil, nil, log.NewNoop(), userContextKey{}).RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1beta1/instances/instance-id", nil))

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "connection reset")
			}
		})
	}
}
