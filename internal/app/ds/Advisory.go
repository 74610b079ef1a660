package ds

// AdvisoryRecord справочная запись о дефиците для одного симптома
type AdvisoryRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Foods       []string `json:"foods"`
}

// Clone отдает копию, чтобы никто не поменял справочник через срез Foods
func (a AdvisoryRecord) Clone() AdvisoryRecord {
	foods := make([]string, len(a.Foods))
	copy(foods, a.Foods)
	return AdvisoryRecord{Name: a.Name, Description: a.Description, Foods: foods}
}
