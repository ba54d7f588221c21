package nes

import "fmt"

// LoadError is returned from LoadINES when a cartridge image can't be parsed
// at all: construction fails and the Console is not usable. Err, when set,
// wraps the underlying cause (an io error, typically) so callers can
// errors.Is/errors.As through it.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("nes: load error: %s", e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnsupportedFeatureError describes a recoverable anomaly: emulation
// continues with a defined fallback, but the host may want to know.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("nes: unsupported feature: %s", e.Feature)
}

// HaltError is surfaced when a KIL opcode executes. The CPU does not recover
// on its own; the host decides whether to stop driving the Console.
type HaltError struct {
	PC     uint16
	OpCode byte
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("nes: halted on illegal opcode $%02X at $%04X", e.OpCode, e.PC)
}
