package analysis

import "skinlab/internal/app/ds"

const (
	TriggerLabelIdle    = "Analyze Now"
	TriggerLabelLoading = "Analyzing..."
)

// ResultView какая из трех областей результата видна. Всегда ровно одна.
type ResultView struct {
	Placeholder bool `json:"placeholder"`
	Loading     bool `json:"loading"`
	Result      bool `json:"result"`
}

// Visibility чистая функция от фазы, без состояния сессии
func Visibility(p ds.Phase) ResultView {
	switch p {
	case ds.PhaseLoading:
		return ResultView{Loading: true}
	case ds.PhaseDone:
		return ResultView{Result: true}
	default:
		return ResultView{Placeholder: true}
	}
}

type UploadView struct {
	EmptyPrompt bool   `json:"empty_prompt"`
	Preview     bool   `json:"preview"`
	DropReady   bool   `json:"drop_ready"`
	PreviewURL  string `json:"preview_url,omitempty"`
	FileName    string `json:"file_name,omitempty"`
}

type TriggerView struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

func triggerFor(p ds.Phase) TriggerView {
	if p == ds.PhaseLoading {
		return TriggerView{Enabled: false, Label: TriggerLabelLoading}
	}
	return TriggerView{Enabled: true, Label: TriggerLabelIdle}
}

// View снимок состояния сессии для отрисовки страницы
type View struct {
	Phase    ds.Phase           `json:"phase"`
	Upload   UploadView         `json:"upload"`
	Symptom  ds.SymptomCode     `json:"symptom"`
	Result   ResultView         `json:"result"`
	Trigger  TriggerView        `json:"trigger"`
	Advisory *ds.AdvisoryRecord `json:"advisory,omitempty"`
}
