package analysis

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"skinlab/internal/app/ds"
)

// AnalysisDelay имитация времени работы модели. Не настраивается.
const AnalysisDelay = 2000 * time.Millisecond

// AdvisoryLookup источник справочных записей, обычно repository.Repository
type AdvisoryLookup interface {
	GetAdvisory(code ds.SymptomCode) (ds.AdvisoryRecord, error)
}

type Option func(*Session)

func WithScheduler(s Scheduler) Option {
	return func(sess *Session) { sess.scheduler = s }
}

func WithLogger(l *log.Entry) Option {
	return func(sess *Session) { sess.log = l }
}

// Session состояние одной страницы: картинка, выбранный симптом и фаза анализа.
// Все обработчики и таймер работают под одним мьютексом, по очереди.
type Session struct {
	mu sync.Mutex

	id        string
	lookup    AdvisoryLookup
	scheduler Scheduler
	log       *log.Entry

	image     *ds.UploadedImage
	preview   string
	dropReady bool

	symptom  ds.SymptomCode
	phase    ds.Phase
	advisory *ds.AdvisoryRecord

	pending    Task
	generation uint64
}

func NewSession(id string, lookup AdvisoryLookup, opts ...Option) *Session {
	s := &Session{
		id:        id,
		lookup:    lookup,
		scheduler: TimerScheduler(),
		log:       log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session_id", id)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() ds.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image != nil
}

func (s *Session) Symptom() ds.SymptomCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symptom
}

// SelectSymptom меняет выбор в списке. Пустой код снимает выбор.
func (s *Session) SelectSymptom(code ds.SymptomCode) error {
	if _, err := ds.ParseSymptomCode(string(code)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symptom = code
	return nil
}

// Start запускает имитацию анализа. Сначала проверяется картинка, потом симптом;
// возвращается только первая ошибка. Вне фазы Idle ничего не делает и возвращает false.
func (s *Session) Start() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != ds.PhaseIdle {
		s.log.WithField("phase", s.phase).Debug("start ignored")
		return false, nil
	}
	if s.image == nil {
		return false, ErrNoImage
	}
	if s.symptom.IsEmpty() {
		return false, ErrNoSymptom
	}

	s.phase = ds.PhaseLoading
	s.advisory = nil
	s.generation++
	gen, symptom := s.generation, s.symptom
	s.pending = s.scheduler.AfterFunc(AnalysisDelay, func() {
		s.resolve(gen, symptom)
	})

	s.log.WithField("symptom", symptom).Info("analysis started")
	return true, nil
}

func (s *Session) resolve(gen uint64, symptom ds.SymptomCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// сессию сбросили, пока таймер ждал
	if gen != s.generation || s.phase != ds.PhaseLoading {
		return
	}
	s.pending = nil

	a, err := s.lookup.GetAdvisory(symptom)
	if err != nil {
		s.log.WithError(err).WithField("symptom", symptom).Error("advisory table is missing a symptom")
		s.phase = ds.PhaseIdle
		return
	}

	s.advisory = &a
	s.phase = ds.PhaseDone
	s.log.WithFields(log.Fields{"symptom": symptom, "advisory": a.Name}).Info("analysis done")
}

// Reset возвращает страницу в исходное состояние и отменяет ожидающий таймер
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.generation++
	s.clearImage()
	s.symptom = ds.SymptomNone
	s.advisory = nil
	s.phase = ds.PhaseIdle
	s.log.Debug("session reset")
}

// View снимок для отрисовки
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Phase: s.phase,
		Upload: UploadView{
			EmptyPrompt: s.image == nil,
			Preview:     s.image != nil,
			DropReady:   s.dropReady,
			PreviewURL:  s.preview,
		},
		Symptom: s.symptom,
		Result:  Visibility(s.phase),
		Trigger: triggerFor(s.phase),
	}
	if s.image != nil {
		v.Upload.FileName = s.image.FileName
	}
	if s.phase == ds.PhaseDone && s.advisory != nil {
		a := s.advisory.Clone()
		v.Advisory = &a
	}
	return v
}
