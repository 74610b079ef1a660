package ds

import (
	"errors"
	"fmt"
)

var ErrUnknownSymptom = errors.New("unknown symptom")

// SymptomCode значение из выпадающего списка видимых симптомов.
// Пустая строка означает, что симптом не выбран.
type SymptomCode string

const (
	SymptomNone         SymptomCode = ""
	SymptomDrySkin      SymptomCode = "dry_skin"
	SymptomPaleSkin     SymptomCode = "pale_skin"
	SymptomRashes       SymptomCode = "rashes"
	SymptomCracks       SymptomCode = "cracks"
	SymptomPigmentation SymptomCode = "pigmentation"
)

// Symptom пункт списка симптомов для страницы
type Symptom struct {
	Code  SymptomCode `json:"code"`
	Label string      `json:"label"`
}

// symptoms порядок совпадает с порядком в выпадающем списке
var symptoms = []Symptom{
	{Code: SymptomDrySkin, Label: "Dry & Rough Skin"},
	{Code: SymptomPaleSkin, Label: "Pale Skin"},
	{Code: SymptomRashes, Label: "Rashes / Eczema"},
	{Code: SymptomCracks, Label: "Cracks at Mouth Corners"},
	{Code: SymptomPigmentation, Label: "Hyperpigmentation"},
}

// Symptoms возвращает закрытый набор симптомов
func Symptoms() []Symptom {
	out := make([]Symptom, len(symptoms))
	copy(out, symptoms)
	return out
}

func (c SymptomCode) IsEmpty() bool {
	return c == SymptomNone
}

func (c SymptomCode) Valid() bool {
	for _, s := range symptoms {
		if s.Code == c {
			return true
		}
	}
	return false
}

func (c SymptomCode) Label() string {
	for _, s := range symptoms {
		if s.Code == c {
			return s.Label
		}
	}
	return ""
}

// ParseSymptomCode принимает пустую строку (снять выбор) или код из набора
func ParseSymptomCode(s string) (SymptomCode, error) {
	c := SymptomCode(s)
	if c.IsEmpty() || c.Valid() {
		return c, nil
	}
	return SymptomNone, fmt.Errorf("%w: %q", ErrUnknownSymptom, s)
}
