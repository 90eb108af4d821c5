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

// Package hinter defines the data model shared between the auto-hinter
// (segments, edges, blue zones, per-glyph actions) and the bytecode
// generator in package bci.  Nothing in this package produces bytecode;
// it only describes the analysis that the bytecode generator consumes.
package hinter
