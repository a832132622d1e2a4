package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	serialPattern = regexp.MustCompile(`^\d{5}(\.\d+)?$`)
	datePattern   = regexp.MustCompile(`(\d{2,4})[-/.](\d{1,2})[-/.](\d{1,2})`)
)

// CleanedDate is the result of normalizing one heterogeneous spreadsheet
// date cell: an ISO date (empty when none could be parsed) and any trailing
// non-date text preserved as a note.
type CleanedDate struct {
	Date string
	Note string
}

// CleanDate normalizes legacy spreadsheet date representations to ISO
// YYYY-MM-DD:
//
//   - five-digit numbers are Excel date serials;
//   - slash/dash/dot-delimited strings may carry 2-, 3- or 4-digit years.
//     A 3-digit year, or any value below 111, is a ROC (民國) year and gets
//     +1911; that check runs first, so 2-digit years also convert as ROC.
//     The exact-boundary value 111 only converts when written with 3 digits,
//     matching the legacy data.
//
// Text around the date token survives as the note; a cell with no
// recognizable date at all becomes a note-only result.
func CleanDate(val string) CleanedDate {
	s := strings.TrimSpace(val)
	if s == "" {
		return CleanedDate{}
	}

	if serialPattern.MatchString(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err == nil {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err == nil {
				return CleanedDate{Date: t.Format("2006-01-02")}
			}
		}
		return CleanedDate{Note: s}
	}

	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return CleanedDate{Note: s}
	}

	y, _ := strconv.Atoi(m[1])
	if len(m[1]) == 3 || y < 111 {
		y += 1911
	} else if len(m[1]) == 2 {
		y += 2000
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	note := strings.TrimSpace(strings.Replace(s, m[0], "", 1))
	return CleanedDate{
		Date: fmt.Sprintf("%04d-%02d-%02d", y, month, day),
		Note: note,
	}
}
