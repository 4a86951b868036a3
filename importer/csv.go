package importer

import (
	"strconv"
	"strings"

	"github.com/atripati/altetudegear/domain"
)

// splitCSVLine splits one CSV line on commas, honoring double quotes: a
// quote toggles quoted mode and commas inside quotes are not separators.
// Quote characters themselves are dropped and cells are trimmed.
func splitCSVLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(current.String()))
	return cells
}

// csvRow gives named access to one data line through the header map that
// was resolved once for the whole file.
type csvRow struct {
	columns map[string]int
	cells   []string
}

func (r csvRow) get(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// splitList parses a semicolon-separated plain list, dropping blanks.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, entry := range strings.Split(value, ";") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// parseColorList parses semicolon-separated Name|#hex pairs. A missing hex
// falls back to the default swatch.
func parseColorList(value string) []domain.ProductColor {
	var colors []domain.ProductColor
	for _, entry := range splitList(value) {
		name, hex, _ := strings.Cut(entry, "|")
		hex = strings.TrimSpace(hex)
		if hex == "" {
			hex = "#111827"
		}
		colors = append(colors, domain.ProductColor{Name: strings.TrimSpace(name), Value: hex})
	}
	return colors
}

// parseImageList parses semicolon-separated src|alt pairs, generating alt
// text from the product name when a pair omits it.
func parseImageList(value, fallbackName string) []domain.ProductImage {
	if fallbackName == "" {
		fallbackName = "Product"
	}
	var images []domain.ProductImage
	for _, entry := range splitList(value) {
		src, alt, _ := strings.Cut(entry, "|")
		alt = strings.TrimSpace(alt)
		if alt == "" {
			alt = fallbackName + " image"
		}
		images = append(images, domain.ProductImage{Src: strings.TrimSpace(src), Alt: alt})
	}
	return images
}

// parseInventoryList parses semicolon-separated size|color|stock triples.
// Entries missing a piece or carrying a non-integer stock are skipped.
func parseInventoryList(value string) []domain.InventoryEntry {
	var entries []domain.InventoryEntry
	for _, entry := range splitList(value) {
		pieces := strings.Split(entry, "|")
		if len(pieces) != 3 {
			continue
		}
		size := strings.TrimSpace(pieces[0])
		color := strings.TrimSpace(pieces[1])
		stock, err := strconv.Atoi(strings.TrimSpace(pieces[2]))
		if size == "" || color == "" || err != nil {
			continue
		}
		entries = append(entries, domain.InventoryEntry{Size: size, Color: color, Stock: stock})
	}
	return entries
}

// ParseCSV decodes header-row CSV into partial records. Column names are
// case-insensitive and resolved to indices once per file. Rows without a
// usable name still come back; they fail validation downstream instead of
// being dropped silently here.
func ParseCSV(input string) ([]domain.PartialProduct, error) {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(strings.TrimSuffix(line, "\r")); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, domain.NewParseError("CSV input is empty.")
	}

	columns := make(map[string]int)
	for i, header := range splitCSVLine(lines[0]) {
		columns[strings.ToLower(header)] = i
	}

	records := make([]domain.PartialProduct, 0, len(lines)-1)
	for _, line := range lines[1:] {
		row := csvRow{columns: columns, cells: splitCSVLine(line)}

		name := row.get("name")
		sizes := splitList(row.get("sizes"))
		colors := parseColorList(row.get("colors"))

		inventory := parseInventoryList(row.get("inventory"))
		if len(inventory) == 0 {
			// uniform-stock convenience: a flat stock column expands to
			// every size/color combination
			stockCell := row.get("stock")
			if stockCell == "" {
				stockCell = row.get("inventorystock")
			}
			if stock, err := strconv.Atoi(stockCell); err == nil && stock > 0 && len(sizes) > 0 && len(colors) > 0 {
				for _, size := range sizes {
					for _, color := range colors {
						inventory = append(inventory, domain.InventoryEntry{Size: size, Color: color.Name, Stock: stock})
					}
				}
			}
		}

		images := parseImageList(row.get("images"), name)
		primaryImage := row.get("image")
		if primaryImage == "" && len(images) > 0 {
			primaryImage = images[0].Src
		}

		record := domain.PartialProduct{
			Name:         name,
			Slug:         row.get("slug"),
			Category:     row.get("category"),
			Collection:   row.get("collection"),
			Description:  row.get("description"),
			Image:        primaryImage,
			Images:       images,
			Sizes:        sizes,
			Colors:       colors,
			Inventory:    inventory,
			Tags:         splitList(row.get("tags")),
			Features:     splitList(row.get("features")),
			IsNew:        strings.EqualFold(row.get("isnew"), "true"),
			IsBestSeller: strings.EqualFold(row.get("isbestseller"), "true"),
		}

		if price, err := strconv.ParseFloat(row.get("price"), 64); err == nil {
			record.Price = price
		}
		if cell := row.get("originalprice"); cell != "" {
			if original, err := strconv.ParseFloat(cell, 64); err == nil {
				record.OriginalPrice = &original
			}
		}

		records = append(records, record)
	}
	return records, nil
}
