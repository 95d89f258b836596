package providers

import (
	"fmt"

	"github.com/9seconds/ipdossier/dossier"
)

func rejected(format string, args ...interface{}) error {
	return dossier.NewLookupError(dossier.FailureRejected, fmt.Errorf(format, args...))
}
