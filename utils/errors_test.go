package utils

import (
	"testing"

	"github.com/pkg/errors"
)

func TestUncheckedError(t *testing.T) {
	UncheckedError(nil)
	UncheckedError(errors.New("close failed"))
}
