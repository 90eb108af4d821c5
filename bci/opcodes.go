// github.com/sshyran/ttfautohint-mirror - a TrueType auto-hinting bytecode generator
// Copyright (C) 2025  The ttfautohint-mirror Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bci

// TrueType interpreter opcodes, restricted to the subset the bytecode
// generator emits. Numeric values follow the OpenType/TrueType
// instruction set specification.
const (
	opSVTCAy = 0x00
	opSVTCAx = 0x01

	opMPPEM = 0x4B

	opLT   = 0x50
	opLTEQ = 0x53
	opGT   = 0x52
	opNEQ  = 0x55

	opIF   = 0x58
	opEIF  = 0x59
	opELSE = 0x1B

	opADD   = 0x60
	opSUB   = 0x61
	opDIV   = 0x62
	opMUL   = 0x63
	opABS   = 0x64
	opNEG   = 0x65
	opFLOOR = 0x66
	opMIN   = 0x8D
	opAND   = 0x5A
	opOR    = 0x5B

	opDUP    = 0x20
	opPOP    = 0x21
	opSWAP   = 0x23
	opROLL   = 0x8A
	opCINDEX = 0x25
	opMINDEX = 0x26

	opJMPR = 0x1C
	opFDEF = 0x2C
	opENDF = 0x2D
	opCALL = 0x2B

	opLOOPCALL = 0x2A

	opNPUSHB = 0x40
	opNPUSHW = 0x41

	// opPUSHB1 is PUSHB_1; PUSHB_n is opPUSHB1 + (n-1) for n in 1..8.
	opPUSHB1 = 0xB0
	// opPUSHW1 is PUSHW_1; PUSHW_n is opPUSHW1 + (n-1) for n in 1..8.
	opPUSHW1 = 0xB8

	opRCVT  = 0x45
	opWCVTP = 0x44
	opRS    = 0x43
	opWS    = 0x42

	opDELTAP1 = 0x5D
	opDELTAP2 = 0x71
	opDELTAP3 = 0x72
)

// maxShortPush is the largest run length the short PUSHB_n/PUSHW_n
// forms can encode.
const maxShortPush = 8

// maxPushRun is the largest run length a single NPUSHB/NPUSHW can
// encode (the count byte is 8 bits).
const maxPushRun = 255
