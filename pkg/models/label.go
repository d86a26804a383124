package models

// DefaultLabelColor is used when a label is created without a color.
const DefaultLabelColor = "#3b82f6"

// LabelColors is the palette labels derived on import cycle through.
var LabelColors = []string{
	"#3b82f6", // blue
	"#ec4899", // pink
	"#10b981", // green
	"#f59e0b", // orange
	"#8b5cf6", // violet
	"#ef4444", // red
	"#14b8a6", // teal
	"#6366f1", // indigo
	"#f97316", // bright orange
	"#06b6d4", // cyan
}

// Label is a free tag that can be attached to any number of transactions.
type Label struct {
	Name  string `json:"name" example:"Vacances"`     // Name of the label, unique regardless of case
	Color string `json:"color" example:"#3b82f6"`     // Display color
	Icon  string `json:"icon,omitempty" example:"✈️"` // Optional icon
}
