package shared

import (
	"io"

	"github.com/golang/glog"
)

// checks if slice of strings Contains given string
func Contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

func SafeString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}

func SafeInt(ptr *int) int {
	if ptr == nil {
		return 0
	}
	return *ptr
}

// CloseQuietly closes `closable` ignoring any error. Meant to be used in defer statements
// where the close error is of no interest to the caller.
func CloseQuietly(closable io.Closer) {
	if err := closable.Close(); err != nil {
		glog.V(10).Infof("error closing resource: %v", err)
	}
}
