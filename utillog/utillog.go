// Package utillog provides an injectable logging seam for leaf packages.
//
// By default DebugLog is a no-op and ErrorLog writes through logrus. Hosts
// embedding the library can swap either func var at startup.
package utillog

import "github.com/sirupsen/logrus"

var (
	DebugLog func(pat string, args ...any) = func(pat string, args ...any) {}
	ErrorLog func(pat string, args ...any) = func(pat string, args ...any) {
		logrus.Errorf(pat, args...)
	}
)
