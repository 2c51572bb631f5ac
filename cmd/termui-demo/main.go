// Command termui-demo exercises every widget in one tabbed dashboard:
// styled text, tables, progress bars, selectable lists, scrolling pages,
// live tick updates and a file browser.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"termui"
)

func main() {
	var startTab int
	var startDir string

	root := &cobra.Command{
		Use:   "termui-demo",
		Short: "Tabbed dashboard showcasing the termui widget set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(startTab, startDir)
		},
	}
	root.Flags().IntVar(&startTab, "tab", 0, "tab index to open on startup")
	root.Flags().StringVar(&startDir, "dir", ".", "directory for the file browser tab")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(startTab int, startDir string) error {
	app := termui.NewApp("termui demo")

	dash := app.AddPage("Dashboard")
	dash.AddLine(termui.Styled("System Dashboard", termui.BoldStyle(termui.Cyan)))
	dash.AddBlank()
	dash.AddLine(termui.Plain("Status:   ").Add("operational", termui.NewStyle(termui.Green)))
	dash.AddLine(termui.Plain("Region:   ").Add("eu-west-1", termui.NewStyle(termui.Yellow)))
	dash.AddLine(termui.Plain("Uptime:   ").Add("14d 6h 12m", termui.Style{}))
	dash.AddBlank()
	dash.AddLine(termui.Styled("Use the arrow keys to explore the tabs.", termui.NewStyle(termui.BrightBlack)))

	buildActions(app)
	buildData(app)
	buildScroll(app)
	buildAbout(app)

	live := app.AddPage("Live")
	bar := termui.NewProgressBar()
	ticks := 0
	app.SetOnTick(func() {
		ticks++
		bar.SetValue(float64(ticks%100) / 100)
		live.Clear()
		live.AddLine(termui.Styled("Deployment progress", termui.Style{}.Bold()))
		live.AddBlank()
		live.AddLine(bar.Render(30))
		live.AddBlank()
		live.AddLine(termui.Plain("Updated ").Add(time.Now().Format("15:04:05"), termui.NewStyle(termui.BrightBlack)))
	})

	browser := termui.NewFileBrowser(startDir, func(path string) {
		dash.AddLine(termui.Plain("Opened: ").Add(path, termui.NewStyle(termui.Green)))
	})
	browser.Attach(app, "Files")

	buildLogs(app)
	buildConfig(app)
	buildNetwork(app)
	buildMetrics(app)
	buildUsers(app)
	buildEvents(app)
	buildHelp(app)

	app.SetActiveTab(startTab)
	app.Run()
	return nil
}

func buildActions(app *termui.App) {
	p := app.AddPage("Actions")
	p.AddLine(termui.Styled("Pick an action", termui.Style{}.Bold()))
	p.AddBlank()

	list := termui.NewSelectableList()
	status := app.Page(0)
	for _, name := range []string{"Restart service", "Flush cache", "Rotate logs", "Drain node"} {
		name := name
		list.AddItem(name, func() {
			status.AddLine(termui.Plain("Ran: ").Add(name, termui.NewStyle(termui.Cyan)))
		})
	}
	p.SetList(list)
}

func buildData(app *termui.App) {
	p := app.AddPage("Data")
	p.AddLine(termui.Styled("Service inventory", termui.Style{}.Bold()))
	p.AddBlank()

	tbl := termui.NewTable().
		AddColumn("ID", 0).
		AddColumn("Service", 0).
		AddColumn("Version", 0).
		AddColumn("State", 0)
	tbl.AddRow("1", "gateway", "2.4.1", "running")
	tbl.AddRow("2", "billing", "1.19.0", "running")
	tbl.AddRow("3", "search", "3.0.0-rc2", "degraded")
	tbl.AddRow("4", "mailer", "0.9.4", "stopped")
	p.AddLines(tbl.Render(72))
}

func buildScroll(app *termui.App) {
	p := app.AddPage("Scroll")
	p.AddLine(termui.Styled("Fifty lines to scroll through", termui.Style{}.Bold()))
	p.AddBlank()
	for i := 1; i <= 50; i++ {
		p.AddLine(termui.Plain("Line " + strconv.Itoa(i)))
	}
}

func buildAbout(app *termui.App) {
	p := app.AddPage("About")
	p.AddLine(termui.Styled("termui", termui.BoldStyle(termui.Magenta)))
	p.AddBlank()
	p.AddPlain("A small terminal UI toolkit with tabs, tables,")
	p.AddPlain("progress bars, selectable lists and a file browser.")
	p.AddBlank()
	p.AddLine(termui.Plain("Keys: ").Add("q quits, arrows navigate", termui.NewStyle(termui.BrightBlack)))
}

func buildLogs(app *termui.App) {
	p := app.AddPage("Logs")
	lines := []struct {
		level string
		color termui.Color
		msg   string
	}{
		{"INFO ", termui.Green, "server listening on :8080"},
		{"INFO ", termui.Green, "connected to postgres"},
		{"WARN ", termui.Yellow, "slow query: 1.2s on /reports"},
		{"ERROR", termui.Red, "upstream timeout: billing"},
		{"INFO ", termui.Green, "retry succeeded"},
	}
	for _, l := range lines {
		p.AddLine(termui.Styled(l.level, termui.BoldStyle(l.color)).Add(" "+l.msg, termui.Style{}))
	}
}

func buildConfig(app *termui.App) {
	p := app.AddPage("Config")
	tbl := termui.NewTable().AddColumn("Key", 0).AddColumn("Value", 0)
	tbl.AddRow("listen_addr", ":8080")
	tbl.AddRow("db_url", "postgres://localhost/app")
	tbl.AddRow("log_level", "info")
	tbl.AddRow("max_conns", "200")
	p.AddLines(tbl.Render(60))
}

func buildNetwork(app *termui.App) {
	p := app.AddPage("Network")
	p.AddLine(termui.Styled("Interface throughput", termui.Style{}.Bold()))
	p.AddBlank()
	for _, iface := range []struct {
		name string
		load float64
	}{{"eth0", 0.72}, {"eth1", 0.31}, {"lo", 0.05}} {
		bar := termui.NewProgressBar().SetValue(iface.load).SetFillColor(termui.Cyan)
		p.AddPlain(iface.name)
		p.AddLine(bar.Render(24))
	}
}

func buildMetrics(app *termui.App) {
	p := app.AddPage("Metrics")
	cpu := termui.NewProgressBar().SetValue(0.43)
	mem := termui.NewProgressBar().SetValue(0.78).SetFillColor(termui.Yellow)
	disk := termui.NewProgressBar().SetValue(0.91).SetFillColor(termui.Red)
	p.AddLine(termui.Plain("CPU "))
	p.AddLine(cpu.Render(28))
	p.AddLine(termui.Plain("MEM "))
	p.AddLine(mem.Render(28))
	p.AddLine(termui.Plain("DISK"))
	p.AddLine(disk.Render(28))
}

func buildUsers(app *termui.App) {
	p := app.AddPage("Users")
	tbl := termui.NewTable().
		AddColumn("User", 0).
		AddColumn("Role", 0).
		AddColumn("Last seen", 0)
	tbl.AddRow("ana", "admin", "2m ago")
	tbl.AddRow("björn", "operator", "1h ago")
	tbl.AddRow("chloé", "viewer", "3d ago")
	p.AddLines(tbl.Render(60))
}

func buildEvents(app *termui.App) {
	p := app.AddPage("Events")
	list := termui.NewSelectableList().SetMultiSelect(true)
	for _, e := range []string{"deploy #481", "deploy #482", "rollback #12", "migration 2026_08"} {
		list.AddItem(e, nil)
	}
	list.SetOnSelect(func(index int, item string) {
		p.Clear()
		p.AddLine(termui.Plain("Acknowledged: ").Add(item, termui.NewStyle(termui.Green)))
		p.AddBlank()
	})
	p.AddLine(termui.Styled("Space marks, Enter acknowledges", termui.NewStyle(termui.BrightBlack)))
	p.AddBlank()
	p.SetList(list)
}

func buildHelp(app *termui.App) {
	p := app.AddPage("Help")
	for _, h := range [][2]string{
		{"q / Ctrl-C", "quit"},
		{"Left/Right", "switch tabs"},
		{"Up/Down", "move cursor or scroll"},
		{"Enter", "activate item"},
		{"Space", "toggle in multi-select lists"},
	} {
		p.AddLine(termui.Styled(h[0], termui.Style{}.Bold()).Add("  "+h[1], termui.Style{}))
	}
}
