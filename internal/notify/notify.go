// Package notify sends desktop notifications over the session bus
// using the org.freedesktop.Notifications interface.
package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	dbusBusName   = "org.freedesktop.Notifications"
	dbusPath      = "/org/freedesktop/Notifications"
	dbusNotify    = "org.freedesktop.Notifications.Notify"
	defaultExpiry = int32(5000) // ms
)

// Send shows a transient informational notification. Errors are
// returned for the caller to log; an unreachable session bus is an
// expected condition, not a failure of the arrangement itself.
func Send(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus unavailable: %w", err)
	}

	obj := conn.Object(dbusBusName, dbus.ObjectPath(dbusPath))
	call := obj.Call(dbusNotify, 0,
		"displayselect",           // app_name
		uint32(0),                 // replaces_id
		"video-display",           // app_icon
		summary,                   // summary
		body,                      // body
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		defaultExpiry,             // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}
	return nil
}
