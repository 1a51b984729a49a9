package compose

import (
	"os"
	"os/user"
	"time"
)

// Error markers substituted for the "error" template variable. Templates
// interpolate this where a value is missing so that a gap shows up in the
// delivered message instead of failing the whole composition.
const (
	htmlErrorMarker = `<span style="color: #b22222; border: 1px solid #b22222; padding: 0px 4px;">value missing</span>`
	textErrorMarker = `[value missing]`
)

// baseParams builds the implicit variables available to every body render:
// the composing host, the composing user, the time of composition, and the
// sender address.
func baseParams(sender string, now time.Time) map[string]any {
	node, _ := os.Hostname()

	username := ""
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	return map[string]any{
		"node":   node,
		"user":   username,
		"now":    now,
		"sender": sender,
	}
}

// HTMLParams builds the implicit variables for an HTML body render, merged
// with any caller-supplied extras. Extras win on conflict.
func HTMLParams(sender string, now time.Time, extra map[string]any) map[string]any {
	params := baseParams(sender, now)
	params["error"] = htmlErrorMarker
	for k, v := range extra {
		params[k] = v
	}
	return params
}

// TextParams builds the implicit variables for a text body render, merged
// with any caller-supplied extras. Extras win on conflict.
func TextParams(sender string, now time.Time, extra map[string]any) map[string]any {
	params := baseParams(sender, now)
	params["error"] = textErrorMarker
	for k, v := range extra {
		params[k] = v
	}
	return params
}
