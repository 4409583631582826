// Command listdemo displays a virtualized list of 10,000 rows across three
// sections. Scroll with the arrow keys, PgUp/PgDn, Home/End, or the mouse
// wheel; click a row to select it; press q or Escape to quit.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	listview "github.com/nkbelov/ListView"
)

const rowKind = listview.Kind("demo")

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "listdemo:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "listdemo:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	list := listview.NewListView()
	list.SetBorder(true)
	list.SetTitle(" listdemo ")
	list.RegisterKind(rowKind, func() listview.Row {
		return listview.NewTextRow()
	})

	selected := "nothing selected"
	list.SetRowClickedFunc(func(index listview.Index) {
		selected = "selected " + index.String()
	})

	width, height := screen.Size()
	list.SetRect(0, 0, width, height-1)

	list.Reload([]int{2500, 5000, 2500}, func(index listview.Index, lv *listview.ListView) listview.Row {
		row := lv.DequeueRow(rowKind, index).(*listview.TextRow)
		row.SetText(fmt.Sprintf("section %d, row %d", index.Section, index.Row))
		row.SetSecondary(index.String())
		row.SetTextStyle(tcell.StyleDefault)
		if index.Row%2 == 1 {
			row.SetTextStyle(tcell.StyleDefault.Dim(true))
		}
		return row
	})

	for {
		screen.Clear()
		list.Draw(screen)
		status := fmt.Sprintf(" offset %d/%d · %d live views · %s ",
			list.GetScrollOffset(), list.ContentHeight(),
			len(list.VisibleIndices()), selected)
		drawStatus(screen, height-1, width, status)
		screen.Show()

		switch event := screen.PollEvent().(type) {
		case *tcell.EventResize:
			width, height = screen.Size()
			list.SetRect(0, 0, width, height-1)
			screen.Sync()
		case *tcell.EventKey:
			if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
				return
			}
			list.InputHandler(event)
		case *tcell.EventMouse:
			list.MouseHandler(event)
		}
	}
}

func drawStatus(screen tcell.Screen, y, width int, text string) {
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range runewidth.FillRight(runewidth.Truncate(text, width, "…"), width) {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
