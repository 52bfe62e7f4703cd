// This file is part of Gopherx86.
//
// Gopherx86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherx86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherx86.  If not, see <https://www.gnu.org/licenses/>.


// Package inspect produces debugging views of decoded instructions and of the
// access information computed for them.
//
// Dump() writes a structured text dump using go-spew. Graph() writes a
// graphviz description of the same data using memviz, which can be rendered
// with the dot tool:
//
//	inspect.Graph(f, &ins, &ai)
//
//	dot -Tpng inspect.dot > inspect.png
package inspect
