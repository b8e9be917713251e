// Package export renders leads and pitches as spreadsheet-friendly CSV.
//
// The layout is fixed: text cells are always quoted with embedded quotes
// doubled, numeric cells are bare, and rows are separated by a single "\n".
package export

import (
	"strconv"
	"strings"

	"github.com/octobees/leadscout/internal/entity"
)

var leadHeaders = []string{
	"Name", "Type", "Phone", "Email", "Website", "Instagram", "LinkedIn",
	"Rating", "Reviews", "Address", "Maps Link", "Lead Score",
}

var pitchHeaders = []string{
	"Lead Score", "Business Name", "Website", "Email", "Phone",
	"Confidence Level", "Primary Issue", "Service to Pitch", "Email Subject", "Email Body",
}

// LeadsCSV renders leads with a header row. No leads yields an empty string.
func LeadsCSV(leads []entity.Lead) string {
	if len(leads) == 0 {
		return ""
	}
	rows := make([]string, 0, len(leads)+1)
	rows = append(rows, strings.Join(leadHeaders, ","))
	for _, lead := range leads {
		rows = append(rows, strings.Join([]string{
			quote(lead.Name),
			quote(lead.Type),
			quote(lead.Phone),
			quote(lead.Email),
			quote(lead.Website),
			quote(lead.Instagram),
			quote(lead.LinkedIn),
			formatNumber(lead.Rating),
			strconv.Itoa(lead.ReviewCount),
			quote(lead.Address),
			quote(lead.GoogleMapsLink),
			strconv.Itoa(lead.LeadScore),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// PitchesCSV renders pitch results with a header row. Newlines in email
// bodies collapse to spaces. Failed results leave the score cell empty.
func PitchesCSV(results []entity.PitchResult) string {
	if len(results) == 0 {
		return ""
	}
	rows := make([]string, 0, len(results)+1)
	rows = append(rows, strings.Join(pitchHeaders, ","))
	for _, result := range results {
		score := ""
		if !result.Failed() {
			score = strconv.Itoa(result.LeadScoreValue)
		}
		rows = append(rows, strings.Join([]string{
			score,
			quote(result.Name),
			quote(result.Website),
			quote(result.Email),
			quote(result.Phone),
			quote(result.ConfidenceLevel),
			quote(result.PrimaryIssue),
			quote(result.ServiceToPitch),
			quote(result.EmailSubject),
			quote(strings.ReplaceAll(result.EmailBody, "\n", " ")),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
