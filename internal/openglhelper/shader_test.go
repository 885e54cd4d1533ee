package openglhelper

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func TestInfoLogReadsReportedLength(t *testing.T) {
	const msg = "0:3(1): error: syntax error"

	var asked []uint32
	getiv := func(object, pname uint32, out *int32) {
		asked = append(asked, pname)
		*out = int32(len(msg))
	}
	getLog := func(object uint32, size int32, _ *int32, dst *uint8) {
		if object != 7 {
			t.Errorf("log read for object %d, want 7", object)
		}
		copy(unsafe.Slice(dst, size), msg)
	}

	if got := infoLog(7, getiv, getLog); got != msg {
		t.Errorf("infoLog = %q, want %q", got, msg)
	}
	if len(asked) != 1 || asked[0] != gl.INFO_LOG_LENGTH {
		t.Errorf("queried %v, want INFO_LOG_LENGTH only", asked)
	}
}

func TestInfoLogEmpty(t *testing.T) {
	getiv := func(uint32, uint32, *int32) {}
	getLog := func(uint32, int32, *int32, *uint8) {}

	if got := infoLog(1, getiv, getLog); got != "" {
		t.Errorf("infoLog = %q, want empty", got)
	}
}
