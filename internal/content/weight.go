package content

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var (
	ErrWeightFormat = errors.New("weight must be a percentage, a fraction or a number")
	ErrWeightRange  = errors.New("weight out of bounds")
)

// WeightBounds is the configured range an evaluation weight (as a
// percentage) must fall in. Disabled bounds accept any parseable weight.
type WeightBounds struct {
	Min     float64
	Max     float64
	Enabled bool
}

// DefaultWeightBounds accepts 0 to 100 percent.
func DefaultWeightBounds() WeightBounds {
	return WeightBounds{Min: 0, Max: 100, Enabled: true}
}

// Check rejects a percentage outside enabled bounds.
func (b WeightBounds) Check(pct float64) error {
	if !b.Enabled {
		return nil
	}
	if pct < b.Min || pct > b.Max {
		return fmt.Errorf("%w: %s is outside [%s, %s]",
			ErrWeightRange, formatPct(pct), formatPct(b.Min), formatPct(b.Max))
	}
	return nil
}

// ParseWeight interprets user-entered weight text as a percentage.
//
//	"40%"  -> 40
//	"4/10" -> 40
//	"0.4"  -> 40 (a number with a decimal separator in [0,1] is a fraction)
//	"75"   -> 75 (any other number is already a percentage)
//
// Both "." and "," are accepted as the decimal separator.
func ParseWeight(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, ErrWeightFormat
	}

	var pct float64
	switch {
	case strings.HasSuffix(s, "%"):
		v, err := parseNumber(strings.TrimSuffix(s, "%"))
		if err != nil {
			return 0, err
		}
		pct = v
	case strings.Contains(s, "/"):
		num, den, _ := strings.Cut(s, "/")
		a, err := parseNumber(num)
		if err != nil {
			return 0, err
		}
		b, err := parseNumber(den)
		if err != nil {
			return 0, err
		}
		if b == 0 {
			return 0, fmt.Errorf("%w: zero denominator", ErrWeightFormat)
		}
		pct = a * 100 / b
	default:
		v, err := parseNumber(s)
		if err != nil {
			return 0, err
		}
		pct = v
		if strings.Contains(s, ".") && v >= 0 && v <= 1 {
			pct = v * 100
		}
	}

	return math.Round(pct*1e4) / 1e4, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrWeightFormat, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %q", ErrWeightFormat, s)
	}
	return v, nil
}

// ValidateWeight parses s and checks it against bounds. Failures are
// reported as a *domain.ValidationError on the "peso" field.
func ValidateWeight(s string, bounds WeightBounds) (float64, error) {
	pct, err := ParseWeight(s)
	if err == nil {
		err = bounds.Check(pct)
	}
	if err != nil {
		return 0, domain.NewValidationError("peso", err.Error())
	}
	return pct, nil
}

func weightMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	return err.Error()
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
