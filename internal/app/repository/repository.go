package repository

import "skinlab/internal/app/ds"

// Repository справочник рекомендаций. Данные статические, только чтение.
type Repository struct {
	advisories map[ds.SymptomCode]ds.AdvisoryRecord
}

func New() *Repository {
	return &Repository{advisories: advisoryTable()}
}

func advisoryTable() map[ds.SymptomCode]ds.AdvisoryRecord {
	return map[ds.SymptomCode]ds.AdvisoryRecord{
		ds.SymptomDrySkin: {
			Name:        "Vitamin C Deficiency",
			Description: "Your symptoms of dry & rough skin align with a lack of Vitamin C, which is essential for collagen production and skin hydration.",
			Foods:       []string{"Oranges", "Lemon", "Strawberries", "Bell Peppers", "Broccoli"},
		},
		ds.SymptomPaleSkin: {
			Name:        "Vitamin B12 Deficiency",
			Description: "Pale skin often indicates anemia caused by low Vitamin B12, necessary for red blood cell formation.",
			Foods:       []string{"Meat", "Fish", "Eggs", "Dairy Products", "Fortified Cereals"},
		},
		ds.SymptomRashes: {
			Name:        "Zinc Deficiency (often related to Vitamin D)",
			Description: "Recurring rashes or eczema-like conditions can be linked to Zinc deficiency or low Vitamin D levels.",
			Foods:       []string{"Pumpkin Seeds", "Chickpeas", "Nuts", "Dairy", "Mushrooms"},
		},
		ds.SymptomCracks: {
			Name:        "Iron & Vitamin B Deficiency",
			Description: "Cracks in the corners of the mouth (Angular Cheilitis) often suggest iron deficiency or lack of B vitamins.",
			Foods:       []string{"Spinach", "Red Meat", "Lentils", "Avocado", "Eggs"},
		},
		ds.SymptomPigmentation: {
			Name:        "Vitamin B12 Deficiency",
			Description: "Hyperpigmentation, especially on the knuckles, palms and around the mouth, can be a sign of low Vitamin B12 levels.",
			Foods:       []string{"Eggs", "Milk", "Cheese", "Fish", "Chicken"},
		},
	}
}
