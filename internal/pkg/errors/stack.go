package errors

import (
	"path/filepath"
	"runtime"
)

// callerSkip runtime.Callers, captureStack, 공개 생성 함수(New/Wrap 등)를 건너뛰어
// 에러를 만든 호출 지점이 첫 번째 프레임이 되도록 합니다.
const callerSkip = 3

const maxStackFrames = 5

// StackFrame 에러 생성 지점의 호출 정보입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack() []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(callerSkip, pc)
	if n == 0 {
		return nil
	}

	frames := make([]StackFrame, 0, n)
	it := runtime.CallersFrames(pc[:n])
	for {
		f, more := it.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(f.File),
			Line:     f.Line,
			Function: f.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
