package domain

import "fmt"

// Client represents a registered client. Clients are created once and never
// mutated or deleted.
type Client struct {
	ID      int64
	Name    string
	Surname string
}

// DisplayName renders the client as "Surname, Name" for reports
func (c *Client) DisplayName() string {
	return fmt.Sprintf("%s, %s", c.Surname, c.Name)
}
