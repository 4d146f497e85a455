package provider

type Provider = any

type Tool struct {
	Name        string
	Description string

	Parameters map[string]any
}
