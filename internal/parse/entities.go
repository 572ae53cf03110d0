package parse

import (
	"regexp"
	"strings"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

var (
	reEmployeeID   = regexp.MustCompile(`(?i)employee\s*(?:id|#|number|no\.?)\s*[:\s]\s*([A-Za-z0-9\-]+)`)
	reEmployeeName = regexp.MustCompile(`(?i)employee(?:\s+name)?\s*:\s*([A-Za-z][A-Za-z .'\-]{1,60})`)
)

// extractEntities fills employee name/id and the employer name.
//
// The employer heuristic is the first non-empty line within the first five
// lines that does not contain "pay". It is knowingly weak (logos and
// addresses routinely precede the legal name) and is kept as-is until
// there is product guidance to do better.
func extractEntities(rec *entity.PaystubRecord, lines []string) {
	for _, line := range lines {
		// id first: "Employee ID: 12345" would otherwise match the name
		// pattern and capture "ID".
		if m := reEmployeeID.FindStringSubmatch(line); m != nil {
			if rec.EmployeeID == nil {
				id := m[1]
				rec.EmployeeID = &id
			}
			continue
		}
		if m := reEmployeeName.FindStringSubmatch(line); m != nil && rec.EmployeeName == nil {
			name := strings.TrimSpace(m[1])
			rec.EmployeeName = &name
		}
	}

	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(strings.ToLower(trimmed), "pay") {
			continue
		}
		rec.EmployerName = &trimmed
		break
	}
}
