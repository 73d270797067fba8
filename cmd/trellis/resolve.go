package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trellis/pkg/document"
	"trellis/pkg/layout"
	"trellis/pkg/style"
	"trellis/pkg/text"
	"trellis/pkg/ui"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var resolveCmd = &cobra.Command{
	Use:   "resolve <document.json>",
	Short: "Compute per-element style and geometry for one document",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().Float64("width", 800, "viewport width in pixels (overrides the document)")
	resolveCmd.Flags().Float64("height", 600, "viewport height in pixels (overrides the document)")
	resolveCmd.Flags().String("font", "", "path to a TTF font used for text measurement")
	resolveCmd.Flags().Bool("json", false, "emit JSON instead of a table")
	_ = viper.BindPFlag("width", resolveCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("height", resolveCmd.Flags().Lookup("height"))
	_ = viper.BindPFlag("font", resolveCmd.Flags().Lookup("font"))

	rootCmd.AddCommand(resolveCmd)
}

// resolvedElement is one row of the CLI's output: both resolver
// outputs for a single element.
type resolvedElement struct {
	ID     ui.ElementID   `json:"id"`
	Type   string         `json:"type"`
	Rect   layout.Rect    `json:"rect"`
	Style  style.Computed `json:"style"`
	Text   string         `json:"text,omitempty"`
	Hidden bool           `json:"hidden,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	doc, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}

	viewport := layout.Size{
		Width:  viper.GetFloat64("width"),
		Height: viper.GetFloat64("height"),
	}
	if !cmd.Flags().Changed("width") && doc.ViewportWidth > 0 {
		viewport.Width = doc.ViewportWidth
	}
	if !cmd.Flags().Changed("height") && doc.ViewportHeight > 0 {
		viewport.Height = doc.ViewportHeight
	}

	engine := layout.NewEngine()
	engine.SetLogger(logger)
	if font := viper.GetString("font"); font != "" {
		engine.SetMeasurer(text.NewMeasurer(text.FontConfig{Regular: font}))
	}
	geometry := engine.Layout(doc.Tree, viewport)

	computer := style.NewComputer(doc.Tree, doc.Styles)
	styles, err := computer.ComputeAll()
	if err != nil {
		return fmt.Errorf("style resolution: %w", err)
	}

	rows := make([]resolvedElement, 0, doc.Tree.Len())
	for _, el := range doc.Tree.All() {
		rows = append(rows, resolvedElement{
			ID:     el.ID,
			Type:   typeName(el.Type),
			Rect:   geometry.RectOf(el.ID),
			Style:  styles[el.ID],
			Text:   el.Text,
			Hidden: !el.Visible,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	if ok, _ := cmd.Flags().GetBool("json"); ok {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return printTable(rows)
}

func printTable(rows []resolvedElement) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tX\tY\tW\tH\tBACKGROUND\tTEXT COLOR\tBORDER")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\t%s\t%.1fpx %s\n",
			r.ID, r.Type,
			r.Rect.X, r.Rect.Y, r.Rect.Width, r.Rect.Height,
			colorString(r.Style.Background), colorString(r.Style.TextColor),
			r.Style.BorderWidth, colorString(r.Style.BorderColor),
		)
	}
	return w.Flush()
}

func colorString(c ui.Color) string {
	if c.IsTransparent() {
		return "-"
	}
	return fmt.Sprintf("#%02x%02x%02x%02x",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5), int(c.A*255+0.5))
}

func typeName(t ui.ElementType) string {
	if payload, ok := t.CustomPayload(); ok {
		return fmt.Sprintf("custom(%d)", payload)
	}
	switch t {
	case ui.ElementApp:
		return "app"
	case ui.ElementContainer:
		return "container"
	case ui.ElementText:
		return "text"
	case ui.ElementImage:
		return "image"
	case ui.ElementButton:
		return "button"
	case ui.ElementInput:
		return "input"
	case ui.ElementList:
		return "list"
	case ui.ElementGrid:
		return "grid"
	default:
		return fmt.Sprintf("type(0x%02x)", uint8(t))
	}
}
