//go:build !unix

package source

import (
	"errors"
	"os"
)

func mapFile(*os.File, int64) ([]byte, func([]byte) error, error) {
	return nil, nil, errors.ErrUnsupported
}
