package repository

import (
	"fmt"
	"strings"

	"skinlab/internal/app/ds"
)

func (r *Repository) ListSymptoms() []ds.Symptom {
	return ds.Symptoms()
}

// SearchSymptoms ищет без учета регистра по коду, подписи, названию и описанию дефицита
func (r *Repository) SearchSymptoms(query string) []ds.Symptom {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.ListSymptoms()
	}

	var found []ds.Symptom
	for _, s := range ds.Symptoms() {
		a := r.advisories[s.Code]
		haystack := strings.ToLower(strings.Join([]string{string(s.Code), s.Label, a.Name, a.Description}, " "))
		if strings.Contains(haystack, query) {
			found = append(found, s)
		}
	}
	return found
}

// GetAdvisory возвращает запись для симптома. Таблица полная для закрытого набора,
// поэтому ошибка возможна только для кода вне набора.
func (r *Repository) GetAdvisory(code ds.SymptomCode) (ds.AdvisoryRecord, error) {
	a, ok := r.advisories[code]
	if !ok {
		return ds.AdvisoryRecord{}, fmt.Errorf("%w: %q", ds.ErrUnknownSymptom, code)
	}
	return a.Clone(), nil
}
