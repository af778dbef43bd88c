package reports

// Palette is cycled by bucket index.
var Palette = []string{
	"#4e73df",
	"#1cc88a",
	"#36b9cc",
	"#f6c23e",
	"#e74a3b",
	"#858796",
	"#5a5c69",
	"#fd7e14",
	"#6f42c1",
	"#20c9a6",
}

// ColorAt returns the palette entry for bucket i.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
