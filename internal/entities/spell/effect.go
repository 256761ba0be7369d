package spell

// FormattedEffect is one display record produced by a formatter
type FormattedEffect struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	MechanicsText string `json:"mechanicsText,omitempty"`
}
