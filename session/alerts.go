package session

import (
	"iter"
	"time"
)

type (
	// Alerts is a queue of notices shown to the user. Every alert is shown
	// for its duration and then fades out.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string // alerts with the same non-empty name replace each other
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64 // 1 when fully shown, 0 when gone
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

func (p AlertPriority) String() string {
	switch p {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Add queues an alert with the default duration.
func (a *Alerts) Add(message string, priority AlertPriority) {
	a.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

// AddNamed queues an alert, replacing a queued alert of the same name if one
// exists. A lower priority alert never replaces a higher one.
func (a *Alerts) AddNamed(name, message string, priority AlertPriority) {
	a.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (a *Alerts) AddAlert(alert Alert) {
	alert.FadeLevel = 1
	if alert.Name != "" {
		for i := range a.alerts {
			if a.alerts[i].Name == alert.Name {
				if a.alerts[i].Priority <= alert.Priority {
					a.alerts[i] = alert
				}
				return
			}
		}
	}
	a.alerts = append(a.alerts, alert)
}

// Update advances the alerts by d. Alerts whose time is up fade out and are
// removed. Returns true while something is still animating.
func (a *Alerts) Update(d time.Duration) (animating bool) {
	kept := a.alerts[:0]
	for _, alert := range a.alerts {
		if alert.Duration > 0 {
			alert.Duration -= d
			if alert.Duration < 0 {
				alert.FadeLevel += float64(alert.Duration) / float64(alertFadeTime)
				alert.Duration = 0
			}
		} else {
			alert.FadeLevel -= float64(d) / float64(alertFadeTime)
		}
		if alert.FadeLevel <= 0 {
			animating = true
			continue
		}
		if alert.FadeLevel < 1 {
			animating = true
		}
		kept = append(kept, alert)
	}
	a.alerts = kept
	return animating
}

// Iterate yields the queued alerts, oldest first.
func (a *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, alert := range a.alerts {
		if !yield(i, alert) {
			return
		}
	}
}

// All returns an iterator over the queued alerts.
func (a *Alerts) All() iter.Seq2[int, Alert] {
	return a.Iterate
}

func (a *Alerts) Len() int {
	return len(a.alerts)
}
