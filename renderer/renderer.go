package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/marina"
)

//go:embed templates/*.md
var templates embed.FS

// InventoryMarkdown renders boats, in the given order, as a markdown table
// followed by the total owed.
func InventoryMarkdown(boats []marina.Boat, total marina.Money) string {
	return RenderInventory(NewInventory(boats, total))
}

// RenderInventory renders the Inventory struct to a markdown string.
func RenderInventory(inv *Inventory) string {
	partials := map[string]string{
		"inventory_title": "inventory_title.md",
		"inventory_boats": "inventory_boats.md",
	}
	if len(inv.Boats) == 0 {
		partials["inventory_boats"] = "inventory_empty.md"
	}
	return renderTemplate("inventory", "inventory.md", partials, inv)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
