// Copyright 2026 The Quill Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treeutil

import (
	"fmt"
	"strings"
)

// TreePrinter renders a tree using box-drawing characters: a node line,
// followed by its children, each prefixed with "├─ " (or "└─ " for the
// last), each line of a multi-line child indented with a continuation
// pipe.
type TreePrinter struct {
	node     string
	children []string
}

// NewTreePrinter returns an empty printer; call WriteNode once and
// WriteChildren any number of times before String.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode sets this printer's own node line.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) {
	p.node = fmt.Sprintf(format, args...)
}

// WriteChildren appends pre-rendered child subtrees (typically the String()
// output of nested TreePrinters).
func (p *TreePrinter) WriteChildren(children ...string) {
	p.children = append(p.children, children...)
}

// RenderTree renders n and its descendants as a box-drawing tree, using
// label for each node's own line.
func RenderTree[T Rewritable[T]](n T, label func(T) string) string {
	p := NewTreePrinter()
	p.WriteNode("%s", label(n))
	for _, c := range n.Children() {
		p.WriteChildren(RenderTree(c, label))
	}
	return p.String()
}

func (p *TreePrinter) String() string {
	var sb strings.Builder
	sb.WriteString(p.node)
	sb.WriteString("\n")

	for i, child := range p.children {
		last := i == len(p.children)-1
		lines := strings.Split(strings.TrimRight(child, "\n"), "\n")
		for j, line := range lines {
			switch {
			case j == 0 && last:
				sb.WriteString(" └─ ")
			case j == 0:
				sb.WriteString(" ├─ ")
			case last:
				sb.WriteString("    ")
			default:
				sb.WriteString(" │  ")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
