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

// Package bci turns a hint analysis (package hinter) into the four
// TrueType bytecode streams a self-hinting font needs: the font
// program (fpgm), the control-value program (prep), per-glyph glyf
// instructions, and the cvt table layout that the other three share.
//
// The central entry point is GlyphDriver, which sweeps a glyph's hint
// analysis over a ppem range, deduplicates identical per-ppem records,
// and emits a size-gated instruction stream. PushAssembler underlies
// every place that stream pushes integer arguments onto the
// interpreter's stack.
package bci
