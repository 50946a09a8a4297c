package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// New returns new random (version 4) uuid as string in XXXXXXXX-XXXX- ... format.
func New() (string, error) {
	uid, err := gouuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "cannot generate uuid")
	}
	return uid.String(), nil
}
