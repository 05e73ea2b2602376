// Package handlers holds the concrete tool implementations registered
// with the invocation router.
package handlers

import "voice-tool-backend/pkg/gcalendar"

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func mapArg(args map[string]any, key string) map[string]any {
	m, _ := args[key].(map[string]any)
	return m
}

// dateTimeArg accepts either a bare ISO string or a {dateTime, timeZone}
// mapping for an event bound.
func dateTimeArg(args map[string]any, key string) gcalendar.EventDateTime {
	switch v := args[key].(type) {
	case string:
		return gcalendar.EventDateTime{DateTime: v}
	case map[string]any:
		edt := gcalendar.EventDateTime{}
		if dt, ok := v["dateTime"].(string); ok {
			edt.DateTime = dt
		}
		if tz, ok := v["timeZone"].(string); ok {
			edt.TimeZone = tz
		}
		return edt
	}
	return gcalendar.EventDateTime{}
}
