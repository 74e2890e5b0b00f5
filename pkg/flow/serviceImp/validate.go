package serviceImp

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"vitisense/entities"
	"vitisense/pkg/flow/service"
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("farmtype", func(fl validator.FieldLevel) bool {
		return entities.FarmType(fl.Field().String()).Valid()
	})
	return v
}

// validateFarm maps the first failing field to its flow error.
func validateFarm(v *validator.Validate, f entities.Farm) error {
	err := v.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "Name":
		return service.ErrEmptyName
	case "Type":
		return service.ErrInvalidFarmType
	}
	return err
}
