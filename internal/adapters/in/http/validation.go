package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// Регистрирует тег slot_time в валидаторе gin
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("slot_time", validateSlotTime)
	})
	return err
}

func validateSlotTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.SlotTimeLayout, fl.Field().String())
	return err == nil
}
