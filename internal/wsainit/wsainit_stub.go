//go:build !windows

package wsainit

import "github.com/windiocp/iocp/internal/plat"

func Ensure() error {
	return plat.ErrUnsupportedPlatform
}
