package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/fs"
)

func TestOpenOptionsChainingReturnsSameBuilder(t *testing.T) {
	base := fs.NewOpenOptions()
	chained := base.Read(true).Write(true).Create(true).Truncate(true)
	assert.Same(t, base, chained)
}

func TestOpenOptionsCreateNewChains(t *testing.T) {
	base := fs.NewOpenOptions()
	chained := base.Write(true).CreateNew(true)
	assert.Same(t, base, chained)
}
