package nes

// Instruction is one opcode's descriptor: how to decode its operand, how
// long it costs, and the plain function that carries out its effect. The
// 256-entry table below is this spec's single source of truth for timing;
// every Clock() call indexes it by the fetched opcode byte.
type Instruction struct {
	OpCode     byte
	Name       string
	Mode       AddressingMode
	Kind       InstructionKind
	Cycles     byte
	PageCycles bool // cross-page penalty applies (branches compute their own, see §9)
	Illegal    bool
	Exec       Executor
}

// instructionTable is grounded directly on the teacher's nes/instructions.go
// 256-entry table (opcode, mnemonic, mode, base cycles, page-cross flag,
// illegal flag): the cycle counts and addressing modes below reproduce that
// table exactly. The executors they point at are new, reorganized as plain
// functions instead of the teacher's opcode-switch in CPU.execute, per the
// instruction-table re-architecture in §9.
var instructionTable = [256]Instruction{
	0x00: {0x00, "BRK", Implicit, KindNone, 7, false, false, opBRK},
	0x01: {0x01, "ORA", IndexedIndirect, KindRead, 6, false, false, opORA},
	0x02: {0x02, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x03: {0x03, "SLO", IndexedIndirect, KindReadModifyWrite, 8, false, true, opSLO},
	0x04: {0x04, "NOP", ZeroPage, KindRead, 3, false, true, opNOP},
	0x05: {0x05, "ORA", ZeroPage, KindRead, 3, false, false, opORA},
	0x06: {0x06, "ASL", ZeroPage, KindReadModifyWrite, 5, false, false, opASL},
	0x07: {0x07, "SLO", ZeroPage, KindReadModifyWrite, 5, false, true, opSLO},
	0x08: {0x08, "PHP", Implicit, KindNone, 3, false, false, opPHP},
	0x09: {0x09, "ORA", Immediate, KindRead, 2, false, false, opORA},
	0x0A: {0x0A, "ASL", Accumulator, KindReadModifyWrite, 2, false, false, opASL},
	0x0B: {0x0B, "ANC", Immediate, KindRead, 2, false, true, opANC},
	0x0C: {0x0C, "NOP", Absolute, KindRead, 4, false, true, opNOP},
	0x0D: {0x0D, "ORA", Absolute, KindRead, 4, false, false, opORA},
	0x0E: {0x0E, "ASL", Absolute, KindReadModifyWrite, 6, false, false, opASL},
	0x0F: {0x0F, "SLO", Absolute, KindReadModifyWrite, 6, false, true, opSLO},

	0x10: {0x10, "BPL", Relative, KindNone, 2, false, false, opBPL},
	0x11: {0x11, "ORA", IndirectIndexed, KindRead, 5, true, false, opORA},
	0x12: {0x12, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x13: {0x13, "SLO", IndirectIndexed, KindReadModifyWrite, 8, false, true, opSLO},
	0x14: {0x14, "NOP", ZeroPageX, KindRead, 4, false, true, opNOP},
	0x15: {0x15, "ORA", ZeroPageX, KindRead, 4, false, false, opORA},
	0x16: {0x16, "ASL", ZeroPageX, KindReadModifyWrite, 6, false, false, opASL},
	0x17: {0x17, "SLO", ZeroPageX, KindReadModifyWrite, 6, false, true, opSLO},
	0x18: {0x18, "CLC", Implicit, KindNone, 2, false, false, opCLC},
	0x19: {0x19, "ORA", AbsoluteY, KindRead, 4, true, false, opORA},
	0x1A: {0x1A, "NOP", Implicit, KindNone, 2, false, true, opNOP},
	0x1B: {0x1B, "SLO", AbsoluteY, KindReadModifyWrite, 7, false, true, opSLO},
	0x1C: {0x1C, "NOP", AbsoluteX, KindRead, 4, true, true, opNOP},
	0x1D: {0x1D, "ORA", AbsoluteX, KindRead, 4, true, false, opORA},
	0x1E: {0x1E, "ASL", AbsoluteX, KindReadModifyWrite, 7, false, false, opASL},
	0x1F: {0x1F, "SLO", AbsoluteX, KindReadModifyWrite, 7, false, true, opSLO},

	0x20: {0x20, "JSR", Absolute, KindNone, 6, false, false, opJSR},
	0x21: {0x21, "AND", IndexedIndirect, KindRead, 6, false, false, opAND},
	0x22: {0x22, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x23: {0x23, "RLA", IndexedIndirect, KindReadModifyWrite, 8, false, true, opRLA},
	0x24: {0x24, "BIT", ZeroPage, KindRead, 3, false, false, opBIT},
	0x25: {0x25, "AND", ZeroPage, KindRead, 3, false, false, opAND},
	0x26: {0x26, "ROL", ZeroPage, KindReadModifyWrite, 5, false, false, opROL},
	0x27: {0x27, "RLA", ZeroPage, KindReadModifyWrite, 5, false, true, opRLA},
	0x28: {0x28, "PLP", Implicit, KindNone, 4, false, false, opPLP},
	0x29: {0x29, "AND", Immediate, KindRead, 2, false, false, opAND},
	0x2A: {0x2A, "ROL", Accumulator, KindReadModifyWrite, 2, false, false, opROL},
	0x2B: {0x2B, "ANC", Immediate, KindRead, 2, false, true, opANC},
	0x2C: {0x2C, "BIT", Absolute, KindRead, 4, false, false, opBIT},
	0x2D: {0x2D, "AND", Absolute, KindRead, 4, false, false, opAND},
	0x2E: {0x2E, "ROL", Absolute, KindReadModifyWrite, 6, false, false, opROL},
	0x2F: {0x2F, "RLA", Absolute, KindReadModifyWrite, 6, false, true, opRLA},

	0x30: {0x30, "BMI", Relative, KindNone, 2, false, false, opBMI},
	0x31: {0x31, "AND", IndirectIndexed, KindRead, 5, true, false, opAND},
	0x32: {0x32, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x33: {0x33, "RLA", IndirectIndexed, KindReadModifyWrite, 8, false, true, opRLA},
	0x34: {0x34, "NOP", ZeroPageX, KindRead, 4, false, true, opNOP},
	0x35: {0x35, "AND", ZeroPageX, KindRead, 4, false, false, opAND},
	0x36: {0x36, "ROL", ZeroPageX, KindReadModifyWrite, 6, false, false, opROL},
	0x37: {0x37, "RLA", ZeroPageX, KindReadModifyWrite, 6, false, true, opRLA},
	0x38: {0x38, "SEC", Implicit, KindNone, 2, false, false, opSEC},
	0x39: {0x39, "AND", AbsoluteY, KindRead, 4, true, false, opAND},
	0x3A: {0x3A, "NOP", Implicit, KindNone, 2, false, true, opNOP},
	0x3B: {0x3B, "RLA", AbsoluteY, KindReadModifyWrite, 7, false, true, opRLA},
	0x3C: {0x3C, "NOP", AbsoluteX, KindRead, 4, true, true, opNOP},
	0x3D: {0x3D, "AND", AbsoluteX, KindRead, 4, true, false, opAND},
	0x3E: {0x3E, "ROL", AbsoluteX, KindReadModifyWrite, 7, false, false, opROL},
	0x3F: {0x3F, "RLA", AbsoluteX, KindReadModifyWrite, 7, false, true, opRLA},

	0x40: {0x40, "RTI", Implicit, KindNone, 6, false, false, opRTI},
	0x41: {0x41, "EOR", IndexedIndirect, KindRead, 6, false, false, opEOR},
	0x42: {0x42, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x43: {0x43, "SRE", IndexedIndirect, KindReadModifyWrite, 8, false, true, opSRE},
	0x44: {0x44, "NOP", ZeroPage, KindRead, 3, false, true, opNOP},
	0x45: {0x45, "EOR", ZeroPage, KindRead, 3, false, false, opEOR},
	0x46: {0x46, "LSR", ZeroPage, KindReadModifyWrite, 5, false, false, opLSR},
	0x47: {0x47, "SRE", ZeroPage, KindReadModifyWrite, 5, false, true, opSRE},
	0x48: {0x48, "PHA", Implicit, KindNone, 3, false, false, opPHA},
	0x49: {0x49, "EOR", Immediate, KindRead, 2, false, false, opEOR},
	0x4A: {0x4A, "LSR", Accumulator, KindReadModifyWrite, 2, false, false, opLSR},
	0x4B: {0x4B, "ALR", Immediate, KindRead, 2, false, true, opALR},
	0x4C: {0x4C, "JMP", Absolute, KindNone, 3, false, false, opJMP},
	0x4D: {0x4D, "EOR", Absolute, KindRead, 4, false, false, opEOR},
	0x4E: {0x4E, "LSR", Absolute, KindReadModifyWrite, 6, false, false, opLSR},
	0x4F: {0x4F, "SRE", Absolute, KindReadModifyWrite, 6, false, true, opSRE},

	0x50: {0x50, "BVC", Relative, KindNone, 2, false, false, opBVC},
	0x51: {0x51, "EOR", IndirectIndexed, KindRead, 5, true, false, opEOR},
	0x52: {0x52, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x53: {0x53, "SRE", IndirectIndexed, KindReadModifyWrite, 8, false, true, opSRE},
	0x54: {0x54, "NOP", ZeroPageX, KindRead, 4, false, true, opNOP},
	0x55: {0x55, "EOR", ZeroPageX, KindRead, 4, false, false, opEOR},
	0x56: {0x56, "LSR", ZeroPageX, KindReadModifyWrite, 6, false, false, opLSR},
	0x57: {0x57, "SRE", ZeroPageX, KindReadModifyWrite, 6, false, true, opSRE},
	0x58: {0x58, "CLI", Implicit, KindNone, 2, false, false, opCLI},
	0x59: {0x59, "EOR", AbsoluteY, KindRead, 4, true, false, opEOR},
	0x5A: {0x5A, "NOP", Implicit, KindNone, 2, false, true, opNOP},
	0x5B: {0x5B, "SRE", AbsoluteY, KindReadModifyWrite, 7, false, true, opSRE},
	0x5C: {0x5C, "NOP", AbsoluteX, KindRead, 4, true, true, opNOP},
	0x5D: {0x5D, "EOR", AbsoluteX, KindRead, 4, true, false, opEOR},
	0x5E: {0x5E, "LSR", AbsoluteX, KindReadModifyWrite, 7, false, false, opLSR},
	0x5F: {0x5F, "SRE", AbsoluteX, KindReadModifyWrite, 7, false, true, opSRE},

	0x60: {0x60, "RTS", Implicit, KindNone, 6, false, false, opRTS},
	0x61: {0x61, "ADC", IndexedIndirect, KindRead, 6, false, false, opADC},
	0x62: {0x62, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x63: {0x63, "RRA", IndexedIndirect, KindReadModifyWrite, 8, false, true, opRRA},
	0x64: {0x64, "NOP", ZeroPage, KindRead, 3, false, true, opNOP},
	0x65: {0x65, "ADC", ZeroPage, KindRead, 3, false, false, opADC},
	0x66: {0x66, "ROR", ZeroPage, KindReadModifyWrite, 5, false, false, opROR},
	0x67: {0x67, "RRA", ZeroPage, KindReadModifyWrite, 5, false, true, opRRA},
	0x68: {0x68, "PLA", Implicit, KindNone, 4, false, false, opPLA},
	0x69: {0x69, "ADC", Immediate, KindRead, 2, false, false, opADC},
	0x6A: {0x6A, "ROR", Accumulator, KindReadModifyWrite, 2, false, false, opROR},
	0x6B: {0x6B, "ARR", Immediate, KindRead, 2, false, true, opARR},
	0x6C: {0x6C, "JMP", Indirect, KindNone, 5, false, false, opJMP},
	0x6D: {0x6D, "ADC", Absolute, KindRead, 4, false, false, opADC},
	0x6E: {0x6E, "ROR", Absolute, KindReadModifyWrite, 6, false, false, opROR},
	0x6F: {0x6F, "RRA", Absolute, KindReadModifyWrite, 6, false, true, opRRA},

	0x70: {0x70, "BVS", Relative, KindNone, 2, false, false, opBVS},
	0x71: {0x71, "ADC", IndirectIndexed, KindRead, 5, true, false, opADC},
	0x72: {0x72, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x73: {0x73, "RRA", IndirectIndexed, KindReadModifyWrite, 8, false, true, opRRA},
	0x74: {0x74, "NOP", ZeroPageX, KindRead, 4, false, true, opNOP},
	0x75: {0x75, "ADC", ZeroPageX, KindRead, 4, false, false, opADC},
	0x76: {0x76, "ROR", ZeroPageX, KindReadModifyWrite, 6, false, false, opROR},
	0x77: {0x77, "RRA", ZeroPageX, KindReadModifyWrite, 6, false, true, opRRA},
	0x78: {0x78, "SEI", Implicit, KindNone, 2, false, false, opSEI},
	0x79: {0x79, "ADC", AbsoluteY, KindRead, 4, true, false, opADC},
	0x7A: {0x7A, "NOP", Implicit, KindNone, 2, false, true, opNOP},
	0x7B: {0x7B, "RRA", AbsoluteY, KindReadModifyWrite, 7, false, true, opRRA},
	0x7C: {0x7C, "NOP", AbsoluteX, KindRead, 4, true, true, opNOP},
	0x7D: {0x7D, "ADC", AbsoluteX, KindRead, 4, true, false, opADC},
	0x7E: {0x7E, "ROR", AbsoluteX, KindReadModifyWrite, 7, false, false, opROR},
	0x7F: {0x7F, "RRA", AbsoluteX, KindReadModifyWrite, 7, false, true, opRRA},

	0x80: {0x80, "NOP", Immediate, KindRead, 2, false, true, opNOP},
	0x81: {0x81, "STA", IndexedIndirect, KindWrite, 6, false, false, opSTA},
	0x82: {0x82, "NOP", Immediate, KindRead, 2, false, true, opNOP},
	0x83: {0x83, "SAX", IndexedIndirect, KindWrite, 6, false, true, opSAX},
	0x84: {0x84, "STY", ZeroPage, KindWrite, 3, false, false, opSTY},
	0x85: {0x85, "STA", ZeroPage, KindWrite, 3, false, false, opSTA},
	0x86: {0x86, "STX", ZeroPage, KindWrite, 3, false, false, opSTX},
	0x87: {0x87, "SAX", ZeroPage, KindWrite, 3, false, true, opSAX},
	0x88: {0x88, "DEY", Implicit, KindNone, 2, false, false, opDEY},
	0x89: {0x89, "NOP", Immediate, KindRead, 2, false, true, opNOP},
	0x8A: {0x8A, "TXA", Implicit, KindNone, 2, false, false, opTXA},
	0x8B: {0x8B, "XAA", Immediate, KindRead, 2, false, true, opXAA},
	0x8C: {0x8C, "STY", Absolute, KindWrite, 4, false, false, opSTY},
	0x8D: {0x8D, "STA", Absolute, KindWrite, 4, false, false, opSTA},
	0x8E: {0x8E, "STX", Absolute, KindWrite, 4, false, false, opSTX},
	0x8F: {0x8F, "SAX", Absolute, KindWrite, 4, false, true, opSAX},

	0x90: {0x90, "BCC", Relative, KindNone, 2, false, false, opBCC},
	0x91: {0x91, "STA", IndirectIndexed, KindWrite, 6, false, false, opSTA},
	0x92: {0x92, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0x93: {0x93, "AHX", IndirectIndexed, KindWrite, 6, false, true, nil},
	0x94: {0x94, "STY", ZeroPageX, KindWrite, 4, false, false, opSTY},
	0x95: {0x95, "STA", ZeroPageX, KindWrite, 4, false, false, opSTA},
	0x96: {0x96, "STX", ZeroPageY, KindWrite, 4, false, false, opSTX},
	0x97: {0x97, "SAX", ZeroPageY, KindWrite, 4, false, true, opSAX},
	0x98: {0x98, "TYA", Implicit, KindNone, 2, false, false, opTYA},
	0x99: {0x99, "STA", AbsoluteY, KindWrite, 5, false, false, opSTA},
	0x9A: {0x9A, "TXS", Implicit, KindNone, 2, false, false, opTXS},
	0x9B: {0x9B, "TAS", AbsoluteY, KindWrite, 5, false, true, nil},
	0x9C: {0x9C, "SHY", AbsoluteX, KindWrite, 5, false, true, nil},
	0x9D: {0x9D, "STA", AbsoluteX, KindWrite, 5, false, false, opSTA},
	0x9E: {0x9E, "SHX", AbsoluteY, KindWrite, 5, false, true, nil},
	0x9F: {0x9F, "AHX", AbsoluteY, KindWrite, 5, false, true, nil},

	0xA0: {0xA0, "LDY", Immediate, KindRead, 2, false, false, opLDY},
	0xA1: {0xA1, "LDA", IndexedIndirect, KindRead, 6, false, false, opLDA},
	0xA2: {0xA2, "LDX", Immediate, KindRead, 2, false, false, opLDX},
	0xA3: {0xA3, "LAX", IndexedIndirect, KindRead, 6, false, true, opLAX},
	0xA4: {0xA4, "LDY", ZeroPage, KindRead, 3, false, false, opLDY},
	0xA5: {0xA5, "LDA", ZeroPage, KindRead, 3, false, false, opLDA},
	0xA6: {0xA6, "LDX", ZeroPage, KindRead, 3, false, false, opLDX},
	0xA7: {0xA7, "LAX", ZeroPage, KindRead, 3, false, true, opLAX},
	0xA8: {0xA8, "TAY", Implicit, KindNone, 2, false, false, opTAY},
	0xA9: {0xA9, "LDA", Immediate, KindRead, 2, false, false, opLDA},
	0xAA: {0xAA, "TAX", Implicit, KindNone, 2, false, false, opTAX},
	0xAB: {0xAB, "LAX", Immediate, KindRead, 2, false, true, opLAX},
	0xAC: {0xAC, "LDY", Absolute, KindRead, 4, false, false, opLDY},
	0xAD: {0xAD, "LDA", Absolute, KindRead, 4, false, false, opLDA},
	0xAE: {0xAE, "LDX", Absolute, KindRead, 4, false, false, opLDX},
	0xAF: {0xAF, "LAX", Absolute, KindRead, 4, false, true, opLAX},

	0xB0: {0xB0, "BCS", Relative, KindNone, 2, false, false, opBCS},
	0xB1: {0xB1, "LDA", IndirectIndexed, KindRead, 5, true, false, opLDA},
	0xB2: {0xB2, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0xB3: {0xB3, "LAX", IndirectIndexed, KindRead, 5, true, true, opLAX},
	0xB4: {0xB4, "LDY", ZeroPageX, KindRead, 4, false, false, opLDY},
	0xB5: {0xB5, "LDA", ZeroPageX, KindRead, 4, false, false, opLDA},
	0xB6: {0xB6, "LDX", ZeroPageY, KindRead, 4, false, false, opLDX},
	0xB7: {0xB7, "LAX", ZeroPageY, KindRead, 4, false, true, opLAX},
	0xB8: {0xB8, "CLV", Implicit, KindNone, 2, false, false, opCLV},
	0xB9: {0xB9, "LDA", AbsoluteY, KindRead, 4, true, false, opLDA},
	0xBA: {0xBA, "TSX", Implicit, KindNone, 2, false, false, opTSX},
	0xBB: {0xBB, "LAS", AbsoluteY, KindRead, 4, true, true, nil},
	0xBC: {0xBC, "LDY", AbsoluteX, KindRead, 4, true, false, opLDY},
	0xBD: {0xBD, "LDA", AbsoluteX, KindRead, 4, true, false, opLDA},
	0xBE: {0xBE, "LDX", AbsoluteY, KindRead, 4, true, false, opLDX},
	0xBF: {0xBF, "LAX", AbsoluteY, KindRead, 4, true, true, opLAX},

	0xC0: {0xC0, "CPY", Immediate, KindRead, 2, false, false, opCPY},
	0xC1: {0xC1, "CMP", IndexedIndirect, KindRead, 6, false, false, opCMP},
	0xC2: {0xC2, "NOP", Immediate, KindRead, 2, false, true, opNOP},
	0xC3: {0xC3, "DCP", IndexedIndirect, KindReadModifyWrite, 8, false, true, opDCP},
	0xC4: {0xC4, "CPY", ZeroPage, KindRead, 3, false, false, opCPY},
	0xC5: {0xC5, "CMP", ZeroPage, KindRead, 3, false, false, opCMP},
	0xC6: {0xC6, "DEC", ZeroPage, KindReadModifyWrite, 5, false, false, opDEC},
	0xC7: {0xC7, "DCP", ZeroPage, KindReadModifyWrite, 5, false, true, opDCP},
	0xC8: {0xC8, "INY", Implicit, KindNone, 2, false, false, opINY},
	0xC9: {0xC9, "CMP", Immediate, KindRead, 2, false, false, opCMP},
	0xCA: {0xCA, "DEX", Implicit, KindNone, 2, false, false, opDEX},
	0xCB: {0xCB, "AXS", Immediate, KindRead, 2, false, true, opAXS},
	0xCC: {0xCC, "CPY", Absolute, KindRead, 4, false, false, opCPY},
	0xCD: {0xCD, "CMP", Absolute, KindRead, 4, false, false, opCMP},
	0xCE: {0xCE, "DEC", Absolute, KindReadModifyWrite, 6, false, false, opDEC},
	0xCF: {0xCF, "DCP", Absolute, KindReadModifyWrite, 6, false, true, opDCP},

	0xD0: {0xD0, "BNE", Relative, KindNone, 2, false, false, opBNE},
	0xD1: {0xD1, "CMP", IndirectIndexed, KindRead, 5, true, false, opCMP},
	0xD2: {0xD2, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0xD3: {0xD3, "DCP", IndirectIndexed, KindReadModifyWrite, 8, false, true, opDCP},
	0xD4: {0xD4, "NOP", ZeroPageX, KindRead, 4, false, true, opNOP},
	0xD5: {0xD5, "CMP", ZeroPageX, KindRead, 4, false, false, opCMP},
	0xD6: {0xD6, "DEC", ZeroPageX, KindReadModifyWrite, 6, false, false, opDEC},
	0xD7: {0xD7, "DCP", ZeroPageX, KindReadModifyWrite, 6, false, true, opDCP},
	0xD8: {0xD8, "CLD", Implicit, KindNone, 2, false, false, opCLD},
	0xD9: {0xD9, "CMP", AbsoluteY, KindRead, 4, true, false, opCMP},
	0xDA: {0xDA, "NOP", Implicit, KindNone, 2, false, true, opNOP},
	0xDB: {0xDB, "DCP", AbsoluteY, KindReadModifyWrite, 7, false, true, opDCP},
	0xDC: {0xDC, "NOP", AbsoluteX, KindRead, 4, true, true, opNOP},
	0xDD: {0xDD, "CMP", AbsoluteX, KindRead, 4, true, false, opCMP},
	0xDE: {0xDE, "DEC", AbsoluteX, KindReadModifyWrite, 7, false, false, opDEC},
	0xDF: {0xDF, "DCP", AbsoluteX, KindReadModifyWrite, 7, false, true, opDCP},

	0xE0: {0xE0, "CPX", Immediate, KindRead, 2, false, false, opCPX},
	0xE1: {0xE1, "SBC", IndexedIndirect, KindRead, 6, false, false, opSBC},
	0xE2: {0xE2, "NOP", Immediate, KindRead, 2, false, true, opNOP},
	0xE3: {0xE3, "ISC", IndexedIndirect, KindReadModifyWrite, 8, false, true, opISC},
	0xE4: {0xE4, "CPX", ZeroPage, KindRead, 3, false, false, opCPX},
	0xE5: {0xE5, "SBC", ZeroPage, KindRead, 3, false, false, opSBC},
	0xE6: {0xE6, "INC", ZeroPage, KindReadModifyWrite, 5, false, false, opINC},
	0xE7: {0xE7, "ISC", ZeroPage, KindReadModifyWrite, 5, false, true, opISC},
	0xE8: {0xE8, "INX", Implicit, KindNone, 2, false, false, opINX},
	0xE9: {0xE9, "SBC", Immediate, KindRead, 2, false, false, opSBC},
	0xEA: {0xEA, "NOP", Implicit, KindNone, 2, false, false, opNOP},
	0xEB: {0xEB, "SBC", Immediate, KindRead, 2, false, true, opSBC},
	0xEC: {0xEC, "CPX", Absolute, KindRead, 4, false, false, opCPX},
	0xED: {0xED, "SBC", Absolute, KindRead, 4, false, false, opSBC},
	0xEE: {0xEE, "INC", Absolute, KindReadModifyWrite, 6, false, false, opINC},
	0xEF: {0xEF, "ISC", Absolute, KindReadModifyWrite, 6, false, true, opISC},

	0xF0: {0xF0, "BEQ", Relative, KindNone, 2, false, false, opBEQ},
	0xF1: {0xF1, "SBC", IndirectIndexed, KindRead, 5, true, false, opSBC},
	0xF2: {0xF2, "KIL", Implicit, KindNone, 2, false, true, opKIL},
	0xF3: {0xF3, "ISC", IndirectIndexed, KindReadModifyWrite, 8, false, true, opISC},
	0xF4: {0xF4, "NOP", ZeroPageX, KindRead, 4, false, true, opNOP},
	0xF5: {0xF5, "SBC", ZeroPageX, KindRead, 4, false, false, opSBC},
	0xF6: {0xF6, "INC", ZeroPageX, KindReadModifyWrite, 6, false, false, opINC},
	0xF7: {0xF7, "ISC", ZeroPageX, KindReadModifyWrite, 6, false, true, opISC},
	0xF8: {0xF8, "SED", Implicit, KindNone, 2, false, false, opSED},
	0xF9: {0xF9, "SBC", AbsoluteY, KindRead, 4, true, false, opSBC},
	0xFA: {0xFA, "NOP", Implicit, KindNone, 2, false, true, opNOP},
	0xFB: {0xFB, "ISC", AbsoluteY, KindReadModifyWrite, 7, false, true, opISC},
	0xFC: {0xFC, "NOP", AbsoluteX, KindRead, 4, true, true, opNOP},
	0xFD: {0xFD, "SBC", AbsoluteX, KindRead, 4, true, false, opSBC},
	0xFE: {0xFE, "INC", AbsoluteX, KindReadModifyWrite, 7, false, false, opINC},
	0xFF: {0xFF, "ISC", AbsoluteX, KindReadModifyWrite, 7, false, true, opISC},
}

// init fills in the handful of entries whose executor is the shared
// unsupported-illegal stub, named by mnemonic rather than repeated at every
// call site above.
func init() {
	for i, inst := range instructionTable {
		if inst.Exec == nil {
			instructionTable[i].Exec = unsupportedIllegal(inst.Name)
		}
	}
}
