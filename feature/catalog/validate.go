package catalog

import (
	"regexp"
	"strings"

	"shelfd/feature/catalog/models"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// ValidateTitle rejects titles shorter than 3 characters after trimming.
func ValidateTitle(s string) error {
	if len(strings.TrimSpace(s)) < 3 {
		return &ValidationError{Msg: "title too short"}
	}
	return nil
}

// ValidateYear rejects a publication year that is present but not exactly
// four digits. When required is true, an absent year is rejected too.
func ValidateYear(s string, required bool) error {
	s = strings.TrimSpace(s)
	if s == "" && !required {
		return nil
	}
	if !yearPattern.MatchString(s) {
		return &ValidationError{Msg: "year must be 4 digits"}
	}
	return nil
}

// ValidateGenre rejects a blank genre when the genre field is mandatory.
func ValidateGenre(s string, required bool) error {
	if required && strings.TrimSpace(s) == "" {
		return &ValidationError{Msg: "genre required"}
	}
	return nil
}

// ValidatePayload checks a create payload against the configured policy.
func ValidatePayload(p models.Payload, pol Policy) error {
	if err := ValidateTitle(p.Title); err != nil {
		return err
	}
	if err := ValidateYear(p.Year, pol.RequireYear); err != nil {
		return err
	}
	return ValidateGenre(p.Genre, pol.RequireGenre)
}

// ValidatePatch checks the fields a partial update actually sets. Fields
// the patch leaves alone are not re-validated.
func ValidatePatch(p models.Patch, pol Policy) error {
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Year != nil {
		if err := ValidateYear(*p.Year, pol.RequireYear); err != nil {
			return err
		}
	}
	if p.Genre != nil {
		if err := ValidateGenre(*p.Genre, pol.RequireGenre); err != nil {
			return err
		}
	}
	return nil
}
