package domain

// CorridorEnd is one side of a promoted corridor.
type CorridorEnd struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Corridor is a featured sending route shown to customers.
type Corridor struct {
	From        CorridorEnd `json:"from"`
	To          CorridorEnd `json:"to"`
	Description string      `json:"description"`
}

// Corridors are the featured routes.
var Corridors = []Corridor{
	{
		From:        CorridorEnd{Code: "GH", Name: "Ghana"},
		To:          CorridorEnd{Code: "US", Name: "United States"},
		Description: "Send money from Ghana to the United States securely and quickly.",
	},
	{
		From:        CorridorEnd{Code: "US", Name: "United States"},
		To:          CorridorEnd{Code: "GH", Name: "Ghana"},
		Description: "Send remittances from the US to Ghana with competitive rates.",
	},
	{
		From:        CorridorEnd{Code: "GH", Name: "Ghana"},
		To:          CorridorEnd{Code: "EU", Name: "Europe"},
		Description: "Transfer funds from Ghana to European countries easily.",
	},
}
