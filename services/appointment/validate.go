package appointment

import (
	"strings"
	"time"

	"mentesana/models"

	"github.com/nyaruka/phonenumbers"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Messages shown on the intake form, kept word-for-word with the site copy.
const (
	msgAllFieldsRequired = "Todos los campos son obligatorios."
	msgInvalidPhone      = "El número de teléfono no es válido."
	msgInvalidDateTime   = "Formato de fecha y hora no válido. Por favor, selecciona una fecha y hora."
	msgPastDateTime      = "No puedes agendar citas en el pasado."
)

// validateInput applies the intake checks in the same order the form does:
// required fields, phone shape, date parsing, past-date rejection.
func validateInput(input models.AppointmentInput, now time.Time) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Date) == "" ||
		strings.TrimSpace(input.Time) == "" {
		return ValidationError{Message: msgAllFieldsRequired}
	}

	if !isPossiblePhone(strings.TrimSpace(input.Phone)) {
		return ValidationError{Message: msgInvalidPhone}
	}

	requested, err := parseDateTime(input.Date, input.Time, now.Location())
	if err != nil {
		return ValidationError{Message: msgInvalidDateTime}
	}
	if !requested.After(now) {
		return ValidationError{Message: msgPastDateTime}
	}

	return nil
}

func parseDateTime(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+timeOfDay, loc)
}

// isPossiblePhone checks the number is structurally possible for its country
// (length/shape against the country metadata table, not carrier validation).
// The number must already carry its calling code, e.g. "+525512345678".
func isPossiblePhone(raw string) bool {
	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}
