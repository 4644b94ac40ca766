package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"BondRV/internal/domain/models"
)

// spreadPattern matches the CODE+/-Nbps spread notation, e.g. "T+50bps",
// "G-10bps", "MS+30bps".
var spreadPattern = regexp.MustCompile(`(?i)^([A-Z]+)([+-])(\d+)\s*bps$`)

// ParseSpread parses a spread specification into its benchmark code and a
// signed basis-point offset. The code is upper-cased; "t+50bps" and "T+50bps"
// are equivalent.
func ParseSpread(spread string) (code string, bps float64, err error) {
	m := spreadPattern.FindStringSubmatch(strings.TrimSpace(spread))
	if m == nil {
		return "", 0, &models.MalformedSpreadError{Spread: spread}
	}

	code = strings.ToUpper(m[1])
	bps, _ = strconv.ParseFloat(m[3], 64)
	if m[2] == "-" {
		bps = -bps
	}
	return code, bps, nil
}
