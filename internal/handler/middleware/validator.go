package middleware

import (
	"sync"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the roomid and phone tags to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("roomid", func(fl validator.FieldLevel) bool {
			_, err := room.NewID(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return booking.IsValidPhone(fl.Field().String())
		})
	})
}
