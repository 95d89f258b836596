package dossier_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/stretchr/testify/assert"
)

func TestLookupErrorKind(t *testing.T) {
	err := fmt.Errorf("cannot send a request: %w",
		dossier.NewLookupError(dossier.FailureTransport, io.EOF))

	assert.Equal(t, dossier.FailureTransport, dossier.FailureKindOf(err))
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "transport failure")
}

func TestLookupErrorKeepsFirstKind(t *testing.T) {
	err := dossier.NewLookupError(dossier.FailureParse,
		dossier.NewLookupError(dossier.FailureRejected, io.EOF))

	assert.Equal(t, dossier.FailureRejected, dossier.FailureKindOf(err))
}

func TestLookupErrorUnknown(t *testing.T) {
	assert.Equal(t, dossier.FailureUnknown, dossier.FailureKindOf(errors.New("x")))
	assert.Equal(t, "unknown", dossier.FailureUnknown.String())
}
