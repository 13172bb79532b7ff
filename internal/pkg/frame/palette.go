package frame

const (
	Background = "#1A1A1A"
	Panel      = "#2A2A2A"
	Gold       = "#FFD700"
	Cream      = "#F5F5DC"
	Muted      = "#888"
	Green      = "#4ADE80"
	Red        = "#F87171"
	Gain       = "#4CAF50"
	Loss       = "#F44336"
	Live       = "#00FF00"
)

var (
	Page = Style{
		"display":         "flex",
		"flexDirection":   "column",
		"width":           "100%",
		"height":          "100%",
		"padding":         "2.5rem",
		"gap":             "1.5rem",
		"backgroundColor": Background,
		"color":           Cream,
		"fontSize":        "24px",
	}

	Title = Style{
		"display":    "flex",
		"fontSize":   "2.5rem",
		"fontWeight": "bold",
		"color":      Gold,
	}

	Heading = Style{
		"display":    "flex",
		"fontSize":   "2rem",
		"fontWeight": "600",
		"color":      Gold,
	}

	Card = Style{
		"display":         "flex",
		"flexDirection":   "column",
		"gap":             "1rem",
		"backgroundColor": Panel,
		"borderRadius":    "1.25rem",
		"padding":         "1.5rem",
		"border":          "2px solid " + Gold,
	}

	Placeholder = Style{
		"display":         "flex",
		"justifyContent":  "center",
		"color":           Cream,
		"fontSize":        "1.6rem",
		"padding":         "1.5rem",
		"backgroundColor": Panel,
		"borderRadius":    "1.25rem",
		"border":          "2px solid " + Gold,
	}

	Row = Style{
		"display":        "flex",
		"justifyContent": "space-between",
		"alignItems":     "center",
		"gap":            "1rem",
	}

	Label = Style{
		"color":      Gold,
		"fontSize":   "1.6rem",
		"fontWeight": "600",
		"minWidth":   "120px",
	}

	Mono = Style{
		"fontFamily":      "monospace",
		"fontSize":        "1.4rem",
		"backgroundColor": Background,
		"padding":         "0.75rem",
		"borderRadius":    "0.75rem",
		"border":          "1px solid " + Gold,
	}
)
