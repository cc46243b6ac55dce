package syncer

import "time"

const (
	SuccessNoticeTTL = 3 * time.Second
	WarningNoticeTTL = 5 * time.Second
	ErrorNoticeTTL   = 5 * time.Second
)

type Notice struct {
	Text    string
	Expires time.Time
}

// Active reports whether the notice is still shown at now.
func (n Notice) Active(now time.Time) bool {
	return n.Text != "" && now.Before(n.Expires)
}

// Notices holds at most one success, one warning and one error message.
// Setting a new one replaces the previous of the same kind.
type Notices struct {
	success Notice
	warning Notice
	failure Notice
}

func (n *Notices) Success(text string, now time.Time) {
	n.success = Notice{Text: text, Expires: now.Add(SuccessNoticeTTL)}
}

func (n *Notices) Warning(text string, now time.Time) {
	n.warning = Notice{Text: text, Expires: now.Add(WarningNoticeTTL)}
}

func (n *Notices) Error(text string, now time.Time) {
	n.failure = Notice{Text: text, Expires: now.Add(ErrorNoticeTTL)}
}

// SuccessText returns the success message, or "" once it has expired.
func (n Notices) SuccessText(now time.Time) string {
	if n.success.Active(now) {
		return n.success.Text
	}
	return ""
}

func (n Notices) WarningText(now time.Time) string {
	if n.warning.Active(now) {
		return n.warning.Text
	}
	return ""
}

// ErrorText returns the error message, or "" once it has expired.
func (n Notices) ErrorText(now time.Time) string {
	if n.failure.Active(now) {
		return n.failure.Text
	}
	return ""
}

func (n *Notices) ClearError() {
	n.failure = Notice{}
}
