package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := New()
	s.Discovered(4)
	s.Succeeded(2, 3)
	s.Succeeded(1, 1)
	assert.Equal(t, "generated 2 of 4 shader pairs (3 uniforms, 4 attributes)", s.String())

	s.FailedWith("PairingError")
	s.FailedWith("CompileError")
	s.FailedWith("PairingError")
	assert.Equal(t, 3, s.NumFailed())
	assert.Equal(t, "generated 2 of 4 shader pairs (3 uniforms, 4 attributes), 3 failed (CompileError=1 PairingError=2)", s.String())
}
