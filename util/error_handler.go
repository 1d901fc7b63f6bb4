package util

import (
	"fmt"

	"github.com/reconquest/pkg/log"
)

// FatalErrorHandler either stops the run on the first failure or logs it
// and lets the remaining files render. Failures counts handled errors;
// RunMathTeX turns a non-zero count into a failed run once every file was
// tried.
type FatalErrorHandler struct {
	ContinueOnError bool
	Failures        int
}

func NewErrorHandler(continueOnError bool) *FatalErrorHandler {
	return &FatalErrorHandler{
		ContinueOnError: continueOnError,
	}
}

func (h *FatalErrorHandler) Handle(err error, format string, args ...interface{}) {
	h.Failures++

	if err == nil {
		if h.ContinueOnError {
			log.Error(fmt.Sprintf(format, args...))
			return
		}
		log.Fatal(fmt.Sprintf(format, args...))
	}

	if h.ContinueOnError {
		log.Errorf(err, format, args...)
		return
	}
	log.Fatalf(err, format, args...)
}
