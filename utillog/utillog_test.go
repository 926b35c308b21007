package utillog

import "testing"

func TestLogSeamSwap(t *testing.T) {
	prevDebug := DebugLog
	prevError := ErrorLog
	defer func() {
		DebugLog = prevDebug
		ErrorLog = prevError
	}()

	var captured []string
	DebugLog = func(pat string, args ...any) { captured = append(captured, "d:"+pat) }
	ErrorLog = func(pat string, args ...any) { captured = append(captured, "e:"+pat) }

	DebugLog("scan %v", 1)
	ErrorLog("bad %v", 2)

	if len(captured) != 2 || captured[0] != "d:scan %v" || captured[1] != "e:bad %v" {
		t.Fatalf("unexpected captured logs: %v", captured)
	}
}
