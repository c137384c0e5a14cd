package holiday

import (
	"github.com/punchdesk/attendance-backend-go/internal/pkg/validator"
)

type UpsertHolidayRequest struct {
	Date string `json:"-"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(TypeHoliday), string(TypeWorking)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be either holiday or working",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}
