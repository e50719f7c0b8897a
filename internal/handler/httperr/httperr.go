package httperr

import (
	"net/http"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	RoomID           string   `json:"roomId"`
	UnavailableDates []string `json:"unavailableDates"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status that err's kind maps to.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	AbortWithError(c, status, err, defaultMessage(err, status), detailOf(err))
}

// AbortMissing is Abort where a not-found answer reads "<what> not found".
func AbortMissing(c *gin.Context, err error, what string) {
	status := StatusOf(err)
	msg := defaultMessage(err, status)
	if status == http.StatusNotFound {
		msg = what + " not found"
	}
	AbortWithError(c, status, err, msg, detailOf(err))
}

// AbortBind reports a request that failed binding or tag validation.
func AbortBind(c *gin.Context, err error) {
	var fields []FieldError
	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		fields = make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	var detail any
	if len(fields) > 0 {
		detail = fields
	}
	AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request", detail)
}

func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrUnavailable:
		return http.StatusServiceUnavailable
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized
	case errs.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		var conflict *availability.ConflictError
		if errs.As(err, &conflict) {
			return conflict.Error()
		}
		return "Resource already exists"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	default:
		return "Internal server error"
	}
}

func detailOf(err error) any {
	var conflict *availability.ConflictError
	if !errs.As(err, &conflict) {
		return nil
	}
	return ConflictDetailOf(conflict)
}

func ConflictDetailOf(conflict *availability.ConflictError) ConflictDetail {
	dates := conflict.UnavailableDates()
	d := ConflictDetail{RoomID: conflict.RoomID.String(), UnavailableDates: make([]string, len(dates))}
	for i, t := range dates {
		d.UnavailableDates[i] = booking.FormatDate(t)
	}
	return d
}
