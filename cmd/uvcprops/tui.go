package main

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kevmo314/go-uvcprops/pkg/property"
)

func runTUI(drv property.Driver) error {
	app := tview.NewApplication()
	pages := tview.NewPages()

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")

	props := tview.NewList()
	props.SetBorder(true).SetTitle(fmt.Sprintf("Properties (frame fixup %d)", drv.FrameFixup()))

	refresh := func() {
		for i, id := range property.IDs() {
			props.SetItemText(i, id.String(), fmt.Sprintf("%s  %s", formatResult(drv.Get(id)), formatRange(drv.Range(id))))
		}
	}

	for _, id := range property.IDs() {
		props.AddItem(id.String(), "", 0, func() {
			form := tview.NewForm()
			form.AddInputField("value", formatResult(drv.Get(id)), 20, tview.InputFieldFloat, nil)
			form.AddButton("Set", func() {
				text := form.GetFormItemByLabel("value").(*tview.InputField).GetText()
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					fmt.Fprintf(logText, "%s: invalid value %q\n", id, text)
				} else {
					fmt.Fprintf(logText, "set %s = %g: %s\n", id, v, drv.Set(id, v))
				}
				refresh()
				pages.RemovePage("edit")
				app.SetFocus(props)
			})
			form.AddButton("Cancel", func() {
				pages.RemovePage("edit")
				app.SetFocus(props)
			})
			form.SetBorder(true).SetTitle(fmt.Sprintf("Set %s %s", id, formatRange(drv.Range(id))))
			pages.AddPage("edit", modal(form, 40, 7), true, true)
			app.SetFocus(form)
		})
	}
	refresh()

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(props, 0, 3, true).
		AddItem(logText, 0, 1, false)
	pages.AddPage("main", layout, true, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyEscape {
			return event
		}
		if pages.HasPage("edit") {
			pages.RemovePage("edit")
			app.SetFocus(props)
			return nil
		}
		app.Stop()
		return nil
	})

	return app.SetRoot(pages, true).Run()
}

func modal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
