package ordermanagerserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/ordermanager/order-manager-api/internal/shared/errors"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError returns an RFC 7807 response for a plain error.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusConflict:
		problem = apierrors.ErrConflict.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondCodedError builds the problem from the coded validation message the
// service attached, so clients get machine-readable codes and params.
func respondCodedError(c *gin.Context, template apierrors.ProblemDetail, err error) {
	var msg *validation.Message
	if errors.As(err, &msg) {
		respondProblem(c, template.WithMessage(msg))
		return
	}
	respondProblem(c, template.WithDetail(err.Error()))
}

func parseIDParam(c *gin.Context, name string) (int, bool) {
	value := c.Param(name)
	id, err := strconv.Atoi(value)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
