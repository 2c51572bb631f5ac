// Command termui-zip browses for a ZIP archive, lists its contents with
// multi-select, and extracts the chosen entries with the system unzip tool.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"termui"
)

const extractLabel = "→ Extract Selected"

func main() {
	var startDir string
	var outDir string

	root := &cobra.Command{
		Use:   "termui-zip",
		Short: "Browse a ZIP archive and extract selected entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(startDir, outDir)
		},
	}
	root.Flags().StringVar(&startDir, "dir", ".", "directory to start browsing in")
	root.Flags().StringVar(&outDir, "out", ".", "directory to extract into")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(startDir, outDir string) error {
	app := termui.NewApp("zip browser")

	home := app.AddPage("Browse")
	home.AddLine(termui.Styled("Pick a .zip file", termui.Style{}.Bold()))
	home.AddBlank()

	browser := termui.NewFileBrowser(startDir, func(path string) {
		if strings.HasSuffix(strings.ToLower(path), ".zip") {
			openArchive(app, path, outDir)
		}
	})
	home.SetList(browser.List())

	app.Run()
	return nil
}

// openArchive fills the Contents tab with the archive's entry list plus a
// trailing extract action. Tabs are created once and reused on later opens.
func openArchive(app *termui.App, archive, outDir string) {
	contents := findOrAddPage(app, "Contents")
	contents.Clear()
	contents.AddLine(termui.Plain("Archive: ").Add(archive, termui.NewStyle(termui.Cyan)))
	contents.AddBlank()

	list := termui.NewSelectableList().SetMultiSelect(true)
	for _, entry := range listArchive(archive) {
		list.AddItem(entry, nil)
	}
	list.AddItem(extractLabel, func() {
		extract(app, archive, outDir, selectedEntries(list))
	})
	contents.SetList(list)

	app.SetActiveTab(pageIndex(app, "Contents"))
}

// selectedEntries returns the marked archive entries, excluding the action
// row should the user have toggled it too.
func selectedEntries(list *termui.SelectableList) []string {
	var out []string
	for _, item := range list.SelectedItems() {
		if item != extractLabel {
			out = append(out, item)
		}
	}
	return out
}

// listArchive shells out to unzip -Z1 for the entry names.
func listArchive(archive string) []string {
	out, err := exec.Command("unzip", "-Z1", archive).Output()
	if err != nil {
		return []string{"(could not list archive)"}
	}
	var entries []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

// extract runs unzip for the chosen entries and reports into a Results tab.
func extract(app *termui.App, archive, outDir string, entries []string) {
	results := findOrAddPage(app, "Results")
	results.Clear()

	if len(entries) == 0 {
		results.AddLine(termui.Styled("Nothing selected.", termui.NewStyle(termui.Yellow)))
		app.SetActiveTab(pageIndex(app, "Results"))
		return
	}

	args := append([]string{"-o", archive}, entries...)
	args = append(args, "-d", outDir)
	err := exec.Command("unzip", args...).Run()

	if err != nil {
		results.AddLine(termui.Styled("Extraction failed: ", termui.BoldStyle(termui.Red)).
			Add(err.Error(), termui.Style{}))
	} else {
		results.AddLine(termui.Styled("Extracted:", termui.BoldStyle(termui.Green)))
		results.AddBlank()
		for _, e := range entries {
			results.AddLine(termui.Plain("  " + e))
		}
	}
	app.SetActiveTab(pageIndex(app, "Results"))
}

func findOrAddPage(app *termui.App, name string) *termui.Page {
	if i := pageIndex(app, name); i >= 0 {
		return app.Page(i)
	}
	return app.AddPage(name)
}

func pageIndex(app *termui.App, name string) int {
	for i := 0; i < app.PageCount(); i++ {
		if app.Page(i).Title() == name {
			return i
		}
	}
	return -1
}
