package http

import "strings"

// matchesSearch filtro de tabla: q vacío acepta todo; si no, subcadena sin distinguir mayúsculas en algún campo.
func matchesSearch(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
