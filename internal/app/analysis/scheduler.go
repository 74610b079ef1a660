package analysis

import "time"

// Task отложенная задача. Stop возвращает false, если задача уже выполнилась или остановлена.
type Task interface {
	Stop() bool
}

// Scheduler откладывает вызов f на d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

// TimerScheduler планировщик на time.AfterFunc
func TimerScheduler() Scheduler {
	return timerScheduler{}
}
