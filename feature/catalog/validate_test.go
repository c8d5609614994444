package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelfd/feature/catalog/models"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid", title: "Dune", wantErr: false},
		{name: "exactly three chars", title: "Foo", wantErr: false},
		{name: "too short", title: "ab", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "padded short title", title: "  ab  ", wantErr: true},
		{name: "empty", title: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, "title too short", vErr.Msg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateYear(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		required bool
		wantErr  bool
	}{
		{name: "four digits", year: "1965", wantErr: false},
		{name: "absent optional", year: "", wantErr: false},
		{name: "absent required", year: "", required: true, wantErr: true},
		{name: "three digits", year: "196", wantErr: true},
		{name: "five digits", year: "19655", wantErr: true},
		{name: "letters", year: "19a5", wantErr: true},
		{name: "padded digits", year: " 1965 ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYear(tt.year, tt.required)
			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, "year must be 4 digits", vErr.Msg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateGenre(t *testing.T) {
	assert.NoError(t, ValidateGenre("", false))
	assert.NoError(t, ValidateGenre("fantasy", true))

	err := ValidateGenre("  ", true)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "genre required", vErr.Msg)
}

func TestValidatePatchChecksOnlySetFields(t *testing.T) {
	pol := Policy{RequireYear: true, RequireGenre: true}

	// A patch that leaves year and genre alone passes even though both
	// are mandatory fields.
	title := "Dune Messiah"
	assert.NoError(t, ValidatePatch(models.Patch{Title: &title}, pol))

	bad := "ab"
	assert.Error(t, ValidatePatch(models.Patch{Title: &bad}, pol))

	blank := ""
	assert.Error(t, ValidatePatch(models.Patch{Genre: &blank}, pol))
	assert.Error(t, ValidatePatch(models.Patch{Year: &blank}, pol))
}
