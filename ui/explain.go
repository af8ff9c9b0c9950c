// Package ui renders a getPackages result as either an interactive
// tview tree or a plain-text listing.
package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"partbuilder/partpkg"
)

// ExplainPlain writes the part/package/class tree of result to w as
// plain text: boot part first (if set), then the remaining parts in
// name order, each with its ordered package list and class counts.
func ExplainPlain(w io.Writer, result partpkg.Result) error {
	names := orderedPartNames(result)

	for _, name := range names {
		fmt.Fprintf(w, "%s\n", name)
		for _, idx := range result.Parts[name] {
			classes := result.Classes[idx]
			fmt.Fprintf(w, "  package #%d: %d classes\n", idx, len(classes))
		}
	}
	return nil
}

// Explain launches an interactive tview tree: boot part at the root,
// each part as a child, each part's ordered packages (labelled with
// their class count) as grandchildren, and each package's classes as
// leaves.
func Explain(result partpkg.Result) error {
	app := tview.NewApplication()

	rootLabel := result.BootPart
	if rootLabel == "" {
		rootLabel = "packages"
	}
	root := tview.NewTreeNode(rootLabel).SetColor(tcell.ColorYellow)
	tree := tview.NewTreeView().SetRoot(root).SetCurrentNode(root)

	for _, name := range orderedPartNames(result) {
		partNode := tview.NewTreeNode(name).SetSelectable(true)
		for _, idx := range result.Parts[name] {
			label := fmt.Sprintf("package #%d (%d classes)", idx, len(result.Classes[idx]))
			pkgNode := tview.NewTreeNode(label).SetSelectable(true)
			for _, class := range result.Classes[idx] {
				pkgNode.AddChild(tview.NewTreeNode(class).SetSelectable(false).SetColor(tcell.ColorGray))
			}
			partNode.AddChild(pkgNode)
		}
		root.AddChild(partNode)
	}

	tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(tree, true).SetFocus(tree).Run()
}

func orderedPartNames(result partpkg.Result) []string {
	names := make([]string, 0, len(result.Parts))
	for name := range result.Parts {
		if name != result.BootPart {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if result.BootPart != "" {
		if _, ok := result.Parts[result.BootPart]; ok {
			names = append([]string{result.BootPart}, names...)
		}
	}
	return names
}
