package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
)

const (
	maxCamionIDLen = 50
	maxNombreLen   = 200
)

// ValidateLocationReport parses and validates a raw request body. Body-level
// failures (empty body, malformed JSON) return a single error immediately;
// field-level failures accumulate so the caller sees every violation at once.
func ValidateLocationReport(body []byte) (*domain.LocationReport, []string) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, []string{"request body is empty"}
	}

	var report domain.LocationReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, []string{"invalid JSON format"}
	}

	var errs []string

	if strings.TrimSpace(report.CamionID) == "" {
		errs = append(errs, "camionId is required")
	} else if utf8.RuneCountInString(report.CamionID) > maxCamionIDLen {
		errs = append(errs, fmt.Sprintf("camionId must not exceed %d characters", maxCamionIDLen))
	}

	if report.Latitud < -90 || report.Latitud > 90 {
		errs = append(errs, "latitud must be between -90 and 90")
	}

	if report.Longitud < -180 || report.Longitud > 180 {
		errs = append(errs, "longitud must be between -180 and 180")
	}

	// (0, 0) is the null island sentinel for a missing GPS fix.
	if report.Latitud == 0 && report.Longitud == 0 {
		errs = append(errs, "coordinates (0, 0) are not a valid GPS fix")
	}

	if utf8.RuneCountInString(report.Nombre) > maxNombreLen {
		errs = append(errs, fmt.Sprintf("nombre must not exceed %d characters", maxNombreLen))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &report, nil
}
