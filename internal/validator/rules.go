package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/rs/zerolog/log"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal().Err(err).Str("tag", tag).Msg("failed to register validation rule")
		}
	}

	mustRegister("pan", matches(domain.PANPattern))
	mustRegister("gstin", matches(domain.GSTINPattern))
	mustRegister("ifsc", matches(domain.IFSCPattern))
	mustRegister("pincode", matches(domain.PincodePattern))
	mustRegister("aadhar", matches(domain.AadharPattern))

	mustRegister("businesstype", func(fl validator.FieldLevel) bool {
		return domain.BusinessType(fl.Field().String()).IsValid()
	})
	mustRegister("role", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRole(fl.Field().String())
		return err == nil
	})
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
