package api

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"tripplanner.app/internal/core/trip"
	"tripplanner.app/internal/core/user"
	"tripplanner.app/pkg/errors"
)

var registerOnce sync.Once

func validateTravelStyle(fl validator.FieldLevel) bool {
	return user.IsTravelStyle(fl.Field().String())
}

func validateTripStatus(fl validator.FieldLevel) bool {
	_, err := trip.ParseStatus(fl.Field().String())
	return err == nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// RegisterValidators installs the custom binding tags used by request DTOs
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err = v.RegisterValidation("travelstyle", validateTravelStyle); err != nil {
			return
		}
		err = v.RegisterValidation("tripstatus", validateTripStatus)
	})
	return err
}

// bindError converts a gin binding failure into a validation error with a readable message
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return errors.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
		case "travelstyle":
			return errors.NewValidationError("travel_style must be one of: budget, mid-range, luxury, backpacker, adventure, family")
		case "tripstatus":
			return errors.NewValidationError("status must be one of: draft, planned, confirmed, completed, cancelled")
		default:
			return errors.NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return errors.NewValidationError("Request body too large")
	}
	if stderrors.Is(err, io.EOF) {
		return errors.NewValidationError("Request body is required")
	}
	return errors.NewValidationError("Invalid JSON body")
}
