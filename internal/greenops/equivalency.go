package greenops

import (
	"fmt"
	"math"
	"strings"
)

// Calculate normalizes input to kilograms and expresses it as miles
// driven and tree seedlings grown.
//
// Below MinEquivalencyThresholdKg the output is empty with InputKg set and
// no error. Normalization errors return an empty output and the error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	seedlings := kg / EPATreeSeedlingFactor
	homeDays := kg / EPAHomeDayFactor
	for _, v := range []float64{miles, seedlings, homeDays} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	milesFormatted := formatEquivalencyValue(miles)
	seedlingsFormatted := formatEquivalencyValue(seedlings)

	return EquivalencyOutput{
		InputKg: kg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyMilesDriven,
				Value:          miles,
				FormattedValue: milesFormatted,
				Label:          "miles driven",
			},
			{
				Type:           EquivalencyTreeSeedlings,
				Value:          seedlings,
				FormattedValue: seedlingsFormatted,
				Label:          "tree seedlings grown for 10 years",
			},
			{
				Type:           EquivalencyHomeDays,
				Value:          homeDays,
				FormattedValue: formatEquivalencyValue(homeDays),
				Label:          "days of home electricity",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving %s miles or growing %s tree seedlings for 10 years",
			approx(milesFormatted), approx(seedlingsFormatted)),
		CompactText: fmt.Sprintf("(≈ %s mi, %s seedlings)",
			strings.TrimPrefix(milesFormatted, "~"), strings.TrimPrefix(seedlingsFormatted, "~")),
	}, nil
}

// approx marks a value as approximate unless FormatLarge already did.
func approx(formatted string) string {
	if strings.HasPrefix(formatted, "~") {
		return formatted
	}
	return "~" + formatted
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
